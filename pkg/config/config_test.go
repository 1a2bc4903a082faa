package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
serverAddr: ":9000"
postgres:
  host: db
  port: "5432"
  replicas: ["replica-0", "replica-1"]
views:
  defaultView: board
cronJobs:
  - name: overdue-task-digest
    spec: "0 9 * * 1-5"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c := &Config{}
	require.NoError(t, ReadConfig(path, c))
	c.applyDefaults()

	assert.Equal(t, ":9000", c.ServerAddr)
	assert.Equal(t, []string{"replica-0", "replica-1"}, c.Postgres.Replicas)
	assert.Equal(t, "board", c.Views.DefaultView)
	assert.Equal(t, 24, c.Views.GanttUnitHours)
	assert.Equal(t, 12, c.Views.StaleTimerHours)
	assert.Equal(t, "UTC", c.Postgres.TimeZone)
	require.Len(t, c.CronJobs, 1)
	assert.Equal(t, "overdue-task-digest", c.CronJobs[0].Name)
}

func TestReadConfigMissingFile(t *testing.T) {
	err := ReadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &Config{})
	assert.Error(t, err)
}
