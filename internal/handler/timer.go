package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/logutils"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewTimerMgr, NewClockMgr)
}

// TimeStore persists time entries.
type TimeStore interface {
	Task(ctx context.Context, id string) (*model.Task, error)
	StartTimeEntry(ctx context.Context, entry *model.TimeEntry) error
	CloseTimeEntry(ctx context.Context, id string, at time.Time) (*model.TimeEntry, error)
	AddManualEntry(ctx context.Context, entry *model.TimeEntry) error
	OpenTimeEntries(ctx context.Context, userID string, kind model.TimeEntryKind) ([]model.TimeEntry, error)
	TimeEntries(ctx context.Context, userID string, from, to *time.Time) ([]model.TimeEntry, error)
}

// tracker is shared by the timer and clock managers.
type tracker struct {
	store TimeStore
	state *appstate.Store
	now   func() time.Time
}

func newTracker(conf *RegisterConfig) tracker {
	t := tracker{state: conf.State, now: time.Now}
	if conf.Store != nil {
		t.store = conf.Store
	}
	return t
}

// closeEntry ends a running entry. An entry already closed elsewhere is not an error.
func (t *tracker) closeEntry(c *gin.Context, entryID string) (*model.TimeEntry, error) {
	entry, err := t.store.CloseTimeEntry(c, entryID, t.now())
	if errors.Is(err, query.ErrNoOpenEntry) {
		logutils.Log.WithField("entry", entryID).Warn("time entry was already closed")
		return nil, nil
	}
	return entry, err
}

// closeTimer closes the entry behind a timer already taken from the session. On failure
// the timer goes back so the session keeps matching the open entry.
func (t *tracker) closeTimer(c *gin.Context, userID string, timer *appstate.Timer) (*model.TimeEntry, error) {
	entry, err := t.closeEntry(c, timer.EntryID)
	if err != nil && !t.state.PutBackTimer(userID, *timer) {
		logutils.Log.WithField("entry", timer.EntryID).Warn("timer replaced before its close failed")
	}
	return entry, err
}

type TimerMgr struct {
	name string
	tracker
}

func NewTimerMgr(conf *RegisterConfig) Manager {
	return &TimerMgr{
		name:    "timer",
		tracker: newTracker(conf),
	}
}

func (mgr *TimerMgr) GetName() string { return mgr.name }

func (mgr *TimerMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *TimerMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.GetTimer)
	g.POST("/start", mgr.StartTimer)
	g.POST("/stop", mgr.StopTimer)
}

func (mgr *TimerMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	StartTimerReq struct {
		TaskID    *string `json:"taskId"`
		ProjectID *string `json:"projectId"`
		Note      string  `json:"note"`
	}
	StartTimerResp struct {
		Timer   appstate.Timer   `json:"timer"`
		Stopped *model.TimeEntry `json:"stopped,omitempty"`
	}
)

// GetTimer godoc
//
//	@Summary	Get the running timer
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[appstate.Timer]	"The timer, or null when none runs"
//	@Router		/api/v1/timer [get]
func (mgr *TimerMgr) GetTimer(c *gin.Context) {
	resputil.Success(c, mgr.state.Get(util.GetToken(c).UserID).ActiveTimer)
}

// StartTimer godoc
//
//	@Summary		Start a timer
//	@Description	A timer that is already running is stopped first
//	@Tags			TimeTracking
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			data	body		StartTimerReq						true	"what is being worked on"
//	@Success		200		{object}	resputil.Response[StartTimerResp]	"Success"
//	@Router			/api/v1/timer/start [post]
func (mgr *TimerMgr) StartTimer(c *gin.Context) {
	var req StartTimerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	userID := util.GetToken(c).UserID
	if req.TaskID != nil && req.ProjectID == nil {
		task, err := mgr.store.Task(c, *req.TaskID)
		if err != nil {
			resputil.DBError(c, err)
			return
		}
		req.ProjectID = &task.ProjectID
	}

	var resp StartTimerResp
	if prev := mgr.state.StopTimer(userID); prev != nil {
		stopped, err := mgr.closeTimer(c, userID, prev)
		if err != nil {
			resputil.Error(c, err.Error(), resputil.ServiceError)
			return
		}
		resp.Stopped = stopped
	}

	entry := &model.TimeEntry{
		UserID:    userID,
		TaskID:    req.TaskID,
		ProjectID: req.ProjectID,
		Kind:      model.TimeEntryTimer,
		StartedAt: mgr.now(),
		Note:      req.Note,
	}
	if err := mgr.store.StartTimeEntry(c, entry); err != nil {
		resputil.DBError(c, err)
		return
	}
	resp.Timer = appstate.Timer{
		EntryID:   entry.ID,
		TaskID:    entry.TaskID,
		ProjectID: entry.ProjectID,
		StartedAt: entry.StartedAt,
	}
	if prev := mgr.state.StartTimer(userID, resp.Timer); prev != nil {
		// A concurrent start won the race for the slot; close the loser too.
		if _, err := mgr.closeEntry(c, prev.EntryID); err != nil {
			logutils.Log.Errorf("close replaced timer: %v", err)
		}
	}
	resputil.Success(c, resp)
}

// StopTimer godoc
//
//	@Summary	Stop the running timer
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[model.TimeEntry]	"The closed entry"
//	@Failure	400	{object}	resputil.Response[any]				"No timer is running"
//	@Router		/api/v1/timer/stop [post]
func (mgr *TimerMgr) StopTimer(c *gin.Context) {
	userID := util.GetToken(c).UserID
	prev := mgr.state.StopTimer(userID)
	if prev == nil {
		resputil.BadRequestError(c, "no timer is running")
		return
	}
	entry, err := mgr.closeTimer(c, userID, prev)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, entry)
}

type ClockMgr struct {
	name string
	tracker
}

func NewClockMgr(conf *RegisterConfig) Manager {
	return &ClockMgr{
		name:    "clock",
		tracker: newTracker(conf),
	}
}

func (mgr *ClockMgr) GetName() string { return mgr.name }

func (mgr *ClockMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ClockMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.GetClock)
	g.POST("/in", mgr.ClockIn)
	g.POST("/out", mgr.ClockOut)
}

func (mgr *ClockMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// GetClock godoc
//
//	@Summary	Get the clock-in state
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[appstate.Clock]	"The clock, or null when clocked out"
//	@Router		/api/v1/clock [get]
func (mgr *ClockMgr) GetClock(c *gin.Context) {
	resputil.Success(c, mgr.state.Get(util.GetToken(c).UserID).Clock)
}

// ClockIn godoc
//
//	@Summary	Clock in
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[appstate.Clock]	"Success"
//	@Failure	400	{object}	resputil.Response[any]				"Already clocked in"
//	@Router		/api/v1/clock/in [post]
func (mgr *ClockMgr) ClockIn(c *gin.Context) {
	userID := util.GetToken(c).UserID
	if mgr.state.Get(userID).Clock != nil {
		resputil.BadRequestError(c, appstate.ErrAlreadyClockedIn.Error())
		return
	}
	entry := &model.TimeEntry{
		UserID:    userID,
		Kind:      model.TimeEntryClock,
		StartedAt: mgr.now(),
	}
	if err := mgr.store.StartTimeEntry(c, entry); err != nil {
		resputil.DBError(c, err)
		return
	}
	if err := mgr.state.ClockIn(userID, entry.ID, entry.StartedAt); err != nil {
		if _, closeErr := mgr.closeEntry(c, entry.ID); closeErr != nil {
			logutils.Log.Errorf("close duplicate clock entry: %v", closeErr)
		}
		resputil.BadRequestError(c, err.Error())
		return
	}
	resputil.Success(c, mgr.state.Get(userID).Clock)
}

// ClockOut godoc
//
//	@Summary	Clock out
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[model.TimeEntry]	"The closed entry"
//	@Failure	400	{object}	resputil.Response[any]				"Not clocked in"
//	@Router		/api/v1/clock/out [post]
func (mgr *ClockMgr) ClockOut(c *gin.Context) {
	userID := util.GetToken(c).UserID
	clock, err := mgr.state.ClockOut(userID)
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	entry, err := mgr.closeEntry(c, clock.EntryID)
	if err != nil {
		if restoreErr := mgr.state.ClockIn(userID, clock.EntryID, clock.Since); restoreErr != nil {
			logutils.Log.WithField("entry", clock.EntryID).Warn("clock replaced before its close failed")
		}
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, entry)
}
