package appstate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

func TestSessionDefaults(t *testing.T) {
	s := New(viewmodel.ViewBoard)
	sess := s.Get("u1")
	assert.Equal(t, viewmodel.ViewBoard, sess.CurrentView)
	assert.Nil(t, sess.ActiveTimer)

	assert.Equal(t, viewmodel.ViewList, New("").Get("u1").CurrentView)
}

func TestSetView(t *testing.T) {
	s := New(viewmodel.ViewList)
	sess, err := s.SetView("u1", "gantt")
	require.NoError(t, err)
	assert.Equal(t, viewmodel.ViewGantt, sess.CurrentView)

	_, err = s.SetView("u1", "timeline")
	assert.ErrorIs(t, err, viewmodel.ErrUnknownView)
	assert.Equal(t, viewmodel.ViewGantt, s.Get("u1").CurrentView)
}

func TestActiveSpaceIsCopied(t *testing.T) {
	s := New(viewmodel.ViewList)
	id := "s1"
	s.SetActiveSpace("u1", &id)
	id = "changed"

	sess := s.Get("u1")
	require.NotNil(t, sess.ActiveSpaceID)
	assert.Equal(t, "s1", *sess.ActiveSpaceID)

	*sess.ActiveSpaceID = "mutated"
	assert.Equal(t, "s1", *s.Get("u1").ActiveSpaceID)

	assert.Nil(t, s.SetActiveSpace("u1", nil).ActiveSpaceID)
}

func TestStartTimerReplacesRunningTimer(t *testing.T) {
	s := New(viewmodel.ViewList)
	now := time.Now()

	assert.Nil(t, s.StartTimer("u1", Timer{EntryID: "e1", TaskID: ptr.To("t1"), StartedAt: now}))
	prev := s.StartTimer("u1", Timer{EntryID: "e2", TaskID: ptr.To("t2"), StartedAt: now.Add(time.Minute)})
	require.NotNil(t, prev)
	assert.Equal(t, "e1", prev.EntryID)
	assert.Equal(t, "e2", s.Get("u1").ActiveTimer.EntryID)
	assert.Equal(t, 1, s.RunningTimers())

	stopped := s.StopTimer("u1")
	require.NotNil(t, stopped)
	assert.Equal(t, "e2", stopped.EntryID)
	assert.Nil(t, s.StopTimer("u1"))
	assert.Nil(t, s.StopTimer("nobody"))
	assert.Zero(t, s.RunningTimers())
}

func TestPutBackTimer(t *testing.T) {
	s := New(viewmodel.ViewList)
	s.StartTimer("u1", Timer{EntryID: "e1"})
	taken := s.StopTimer("u1")
	require.NotNil(t, taken)

	assert.True(t, s.PutBackTimer("u1", *taken))
	assert.Equal(t, "e1", s.Get("u1").ActiveTimer.EntryID)

	s.StopTimer("u1")
	s.StartTimer("u1", Timer{EntryID: "e2"})
	assert.False(t, s.PutBackTimer("u1", *taken))
	assert.Equal(t, "e2", s.Get("u1").ActiveTimer.EntryID)
}

func TestClock(t *testing.T) {
	s := New(viewmodel.ViewList)
	now := time.Now()

	require.NoError(t, s.ClockIn("u1", "c1", now))
	assert.ErrorIs(t, s.ClockIn("u1", "c2", now), ErrAlreadyClockedIn)

	c, err := s.ClockOut("u1")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.EntryID)

	_, err = s.ClockOut("u1")
	assert.ErrorIs(t, err, ErrNotClockedIn)
}

func TestForgetEntry(t *testing.T) {
	s := New(viewmodel.ViewList)
	s.StartTimer("u1", Timer{EntryID: "e1"})
	require.NoError(t, s.ClockIn("u1", "c1", time.Now()))

	assert.False(t, s.ForgetEntry("u1", "other"))
	assert.True(t, s.ForgetEntry("u1", "e1"))
	assert.True(t, s.ForgetEntry("u1", "c1"))
	sess := s.Get("u1")
	assert.Nil(t, sess.ActiveTimer)
	assert.Nil(t, sess.Clock)
}

func TestRestore(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	ended := base.Add(time.Hour)
	entry := func(id, user string, kind model.TimeEntryKind, started time.Time) model.TimeEntry {
		e := model.TimeEntry{UserID: user, Kind: kind, StartedAt: started, TaskID: ptr.To("t-" + id)}
		e.ID = id
		return e
	}
	closed := entry("closed", "u1", model.TimeEntryTimer, base.Add(3*time.Hour))
	closed.EndedAt = &ended

	s := New(viewmodel.ViewList)
	s.Restore([]model.TimeEntry{
		entry("old", "u1", model.TimeEntryTimer, base),
		entry("new", "u1", model.TimeEntryTimer, base.Add(time.Hour)),
		closed,
		entry("clock", "u1", model.TimeEntryClock, base),
		entry("other", "u2", model.TimeEntryTimer, base),
	})

	u1 := s.Get("u1")
	require.NotNil(t, u1.ActiveTimer)
	assert.Equal(t, "new", u1.ActiveTimer.EntryID)
	assert.Equal(t, "t-new", *u1.ActiveTimer.TaskID)
	require.NotNil(t, u1.Clock)
	assert.Equal(t, base, u1.Clock.Since)
	assert.Equal(t, 2, s.RunningTimers())
}

func TestStoreConcurrentUse(t *testing.T) {
	s := New(viewmodel.ViewList)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := []string{"u1", "u2"}[i%2]
			s.StartTimer(user, Timer{EntryID: "e"})
			_, _ = s.SetView(user, "board")
			_ = s.Get(user)
			s.StopTimer(user)
		}()
	}
	wg.Wait()
	assert.Zero(t, s.RunningTimers())
}
