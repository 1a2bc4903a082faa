package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
)

func TestResolveTaskRecords(t *testing.T) {
	c := sampleCollections()
	records := ResolveTaskRecords(c)

	require.Len(t, records, len(c.Tasks))
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, IDs(records))

	full := records[0]
	require.NotNil(t, full.Project)
	require.NotNil(t, full.Folder)
	require.NotNil(t, full.Space)
	assert.Equal(t, "Website", full.Project.Name)
	assert.Equal(t, "Acme", full.Folder.Name)
	assert.Equal(t, "Clients", full.Space.Name)

	// folder points at a space that is not loaded
	partial := records[1]
	require.NotNil(t, partial.Project)
	require.NotNil(t, partial.Folder)
	assert.Nil(t, partial.Space)
}

func TestResolveTaskRecordsMissingProject(t *testing.T) {
	orphan := task("1", model.TaskTodo)
	orphan.ProjectID = "p1"

	var records []TaskRecord
	require.NotPanics(t, func() {
		records = ResolveTaskRecords(Collections{Tasks: []model.Task{orphan}})
	})
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Project)
	assert.Nil(t, records[0].Folder)
	assert.Nil(t, records[0].Space)
	assert.Equal(t, "1", records[0].ID)
}

func TestResolveTaskRecordsIdempotent(t *testing.T) {
	c := sampleCollections()
	assert.Equal(t, ResolveTaskRecords(c), ResolveTaskRecords(c))
	assert.Equal(t, ResolveProjectRecords(c), ResolveProjectRecords(c))
}

func TestResolveTaskRecordsDoesNotShareAncestors(t *testing.T) {
	c := sampleCollections()
	records := ResolveTaskRecords(c)
	records[0].Project.Name = "changed"

	assert.Equal(t, "Website", c.Projects[0].Name)
	assert.Equal(t, "Website", ResolveTaskRecords(c)[0].Project.Name)
}

func TestResolveProjectRecords(t *testing.T) {
	records := ResolveProjectRecords(sampleCollections())
	require.Len(t, records, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, IDs(records))

	site := records[0]
	assert.Equal(t, 2, site.TaskCount)
	assert.Equal(t, 1, site.CompletedCount)
	// 40 and 150 clamped to 100
	assert.InDelta(t, 70, site.Progress, 1e-9)
	assert.InDelta(t, 12, site.EstimateHours, 1e-9)
	assert.InDelta(t, 7, site.TrackedHours, 1e-9)
	assert.Equal(t, []string{"u1", "u3"}, site.Assignees)
	assert.Equal(t, []string{"design", "dev"}, site.Tags)
	require.NotNil(t, site.Space)

	seo := records[1]
	require.NotNil(t, seo.Folder)
	assert.Nil(t, seo.Space)

	empty := records[2]
	assert.Zero(t, empty.TaskCount)
	assert.Zero(t, empty.Progress)
	assert.Empty(t, empty.Assignees)
}
