package logutils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	before := Log.GetLevel()
	t.Cleanup(func() { Log.SetLevel(before) })

	require.NoError(t, SetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())

	assert.Error(t, SetLevel("chatty"))
	assert.Equal(t, logrus.WarnLevel, Log.GetLevel())
}
