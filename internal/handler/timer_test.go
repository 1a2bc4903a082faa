package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

var clockStart = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

func newTrackerRouter(store *fakeTimeStore, state *appstate.Store) *gin.Engine {
	t := tracker{store: store, state: state, now: steppingClock(clockStart, 30*time.Minute)}
	timer := &TimerMgr{name: "timer", tracker: t}
	clock := &ClockMgr{name: "clock", tracker: t}
	return newTestRouter(member, func(g *gin.RouterGroup) {
		timer.RegisterProtected(g.Group("/timer"))
		clock.RegisterProtected(g.Group("/clock"))
	})
}

func TestTimerStartStop(t *testing.T) {
	store := newFakeTimeStore()
	state := appstate.New(viewmodel.ViewList)
	r := newTrackerRouter(store, state)

	w := serve(r, http.MethodPost, "/timer/start", StartTimerReq{TaskID: ptr.To("t1")})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	started := decode[StartTimerResp](t, w).Data
	assert.Equal(t, "e1", started.Timer.EntryID)
	assert.Equal(t, ptr.To("p1"), started.Timer.ProjectID)
	assert.Nil(t, started.Stopped)
	assert.True(t, started.Timer.StartedAt.Equal(clockStart))

	// Starting again stops the first timer.
	w = serve(r, http.MethodPost, "/timer/start", StartTimerReq{ProjectID: ptr.To("p2"), Note: "call"})
	require.Equal(t, http.StatusOK, w.Code)
	restarted := decode[StartTimerResp](t, w).Data
	assert.Equal(t, "e2", restarted.Timer.EntryID)
	require.NotNil(t, restarted.Stopped)
	assert.Equal(t, "e1", restarted.Stopped.ID)
	assert.InDelta(t, 0.5, restarted.Stopped.Hours, 1e-9)

	running := decode[*appstate.Timer](t, serve(r, http.MethodGet, "/timer", nil)).Data
	require.NotNil(t, running)
	assert.Equal(t, "e2", running.EntryID)
	assert.Equal(t, 1, state.RunningTimers())

	w = serve(r, http.MethodPost, "/timer/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stopped := decode[model.TimeEntry](t, w).Data
	assert.Equal(t, "e2", stopped.ID)
	assert.Equal(t, "call", stopped.Note)
	assert.InDelta(t, 0.5, stopped.Hours, 1e-9)
	assert.Zero(t, state.RunningTimers())

	w = serve(r, http.MethodPost, "/timer/stop", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimerKeptWhenCloseFails(t *testing.T) {
	store := newFakeTimeStore()
	state := appstate.New(viewmodel.ViewList)
	r := newTrackerRouter(store, state)

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/timer/start", StartTimerReq{}).Code)
	store.closeErr = errors.New("connection reset")

	w := serve(r, http.MethodPost, "/timer/start", StartTimerReq{ProjectID: ptr.To("p2")})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	w = serve(r, http.MethodPost, "/timer/stop", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	running := decode[*appstate.Timer](t, serve(r, http.MethodGet, "/timer", nil)).Data
	require.NotNil(t, running)
	assert.Equal(t, "e1", running.EntryID)
	assert.Nil(t, store.entries["e1"].EndedAt)
	assert.Len(t, store.order, 1)

	store.closeErr = nil
	w = serve(r, http.MethodPost, "/timer/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "e1", decode[model.TimeEntry](t, w).Data.ID)
	assert.Zero(t, state.RunningTimers())
}

func TestClockKeptWhenCloseFails(t *testing.T) {
	store := newFakeTimeStore()
	state := appstate.New(viewmodel.ViewList)
	r := newTrackerRouter(store, state)

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/clock/in", nil).Code)
	store.closeErr = errors.New("connection reset")
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodPost, "/clock/out", nil).Code)

	clock := state.Get(member.UserID).Clock
	require.NotNil(t, clock)
	assert.Equal(t, "e1", clock.EntryID)

	store.closeErr = nil
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/clock/out", nil).Code)
	assert.Nil(t, state.Get(member.UserID).Clock)
}

func TestTimerUnknownTask(t *testing.T) {
	r := newTrackerRouter(newFakeTimeStore(), appstate.New(viewmodel.ViewList))
	w := serve(r, http.MethodPost, "/timer/start", StartTimerReq{TaskID: ptr.To("missing")})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTimerStopAfterEntryClosedElsewhere(t *testing.T) {
	store := newFakeTimeStore()
	state := appstate.New(viewmodel.ViewList)
	r := newTrackerRouter(store, state)

	require.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/timer/start", StartTimerReq{}).Code)
	store.entries["e1"].Close(clockStart.Add(time.Hour))

	w := serve(r, http.MethodPost, "/timer/stop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, state.Get("u1").ActiveTimer)
}

func TestClockInOut(t *testing.T) {
	store := newFakeTimeStore()
	state := appstate.New(viewmodel.ViewList)
	r := newTrackerRouter(store, state)

	w := serve(r, http.MethodPost, "/clock/in", nil)
	require.Equal(t, http.StatusOK, w.Code)
	clock := decode[*appstate.Clock](t, w).Data
	require.NotNil(t, clock)
	assert.Equal(t, "e1", clock.EntryID)
	assert.Equal(t, model.TimeEntryClock, store.entries["e1"].Kind)

	w = serve(r, http.MethodPost, "/clock/in", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, store.order, 1)

	w = serve(r, http.MethodPost, "/clock/out", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entry := decode[model.TimeEntry](t, w).Data
	assert.Equal(t, "e1", entry.ID)
	assert.InDelta(t, 0.5, entry.Hours, 1e-9)

	w = serve(r, http.MethodPost, "/clock/out", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, decode[*appstate.Clock](t, serve(r, http.MethodGet, "/clock", nil)).Data)
}

func TestSessionState(t *testing.T) {
	state := appstate.New(viewmodel.ViewList)
	mgr := &StateMgr{name: "state", state: state}
	r := newTestRouter(member, func(g *gin.RouterGroup) {
		mgr.RegisterProtected(g.Group("/state"))
	})

	session := decode[appstate.Session](t, serve(r, http.MethodGet, "/state", nil)).Data
	assert.Equal(t, viewmodel.ViewList, session.CurrentView)
	assert.Nil(t, session.ActiveSpaceID)

	w := serve(r, http.MethodPut, "/state", UpdateStateReq{CurrentView: ptr.To("gantt"), ActiveSpaceID: ptr.To("s1")})
	require.Equal(t, http.StatusOK, w.Code)
	session = decode[appstate.Session](t, w).Data
	assert.Equal(t, viewmodel.ViewGantt, session.CurrentView)
	assert.Equal(t, ptr.To("s1"), session.ActiveSpaceID)

	w = serve(r, http.MethodPut, "/state", UpdateStateReq{ActiveSpaceID: ptr.To("")})
	require.Equal(t, http.StatusOK, w.Code)
	session = decode[appstate.Session](t, w).Data
	assert.Nil(t, session.ActiveSpaceID)
	assert.Equal(t, viewmodel.ViewGantt, session.CurrentView)

	w = serve(r, http.MethodPut, "/state", UpdateStateReq{CurrentView: ptr.To("timeline")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
