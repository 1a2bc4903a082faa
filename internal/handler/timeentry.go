package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewTimeEntryMgr)
}

type TimeEntryMgr struct {
	name string
	tracker
}

func NewTimeEntryMgr(conf *RegisterConfig) Manager {
	return &TimeEntryMgr{
		name:    "time-entries",
		tracker: newTracker(conf),
	}
}

func (mgr *TimeEntryMgr) GetName() string { return mgr.name }

func (mgr *TimeEntryMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *TimeEntryMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListTimeEntries)
	g.POST("", mgr.CreateTimeEntry)
}

func (mgr *TimeEntryMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("", mgr.ListAllTimeEntries)
}

type (
	ListTimeEntriesReq struct {
		From   string `form:"from"`
		To     string `form:"to"`
		UserID string `form:"user_id"`
	}
	CreateTimeEntryReq struct {
		TaskID    *string  `json:"taskId"`
		ProjectID *string  `json:"projectId"`
		StartedAt string   `json:"startedAt" binding:"required"`
		EndedAt   *string  `json:"endedAt"`
		Hours     *float64 `json:"hours" binding:"omitempty,gt=0,lte=24"`
		Note      string   `json:"note"`
	}
)

// toModel builds a finished manual entry from either an end time or a duration.
func (req *CreateTimeEntryReq) toModel(userID string) (*model.TimeEntry, string) {
	started := viewmodel.ParseDate(req.StartedAt)
	if started == nil {
		return nil, "invalid startedAt"
	}
	entry := &model.TimeEntry{
		UserID:    userID,
		TaskID:    req.TaskID,
		ProjectID: req.ProjectID,
		Kind:      model.TimeEntryManual,
		StartedAt: *started,
		Note:      req.Note,
	}
	switch {
	case req.EndedAt != nil:
		ended := viewmodel.ParseDate(*req.EndedAt)
		if ended == nil || ended.Before(*started) {
			return nil, "endedAt must be a time after startedAt"
		}
		entry.Close(*ended)
	case req.Hours != nil:
		entry.Close(started.Add(hoursToDuration(*req.Hours)))
	default:
		return nil, "either endedAt or hours is required"
	}
	return entry, ""
}

// ListTimeEntries godoc
//
//	@Summary	List the caller's time entries
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		ListTimeEntriesReq						false	"entries started in [from, to)"
//	@Success	200		{object}	resputil.Response[[]model.TimeEntry]	"Newest first"
//	@Router		/api/v1/time-entries [get]
func (mgr *TimeEntryMgr) ListTimeEntries(c *gin.Context) {
	mgr.list(c, util.GetToken(c).UserID)
}

// ListAllTimeEntries godoc
//
//	@Summary	List time entries of every user
//	@Tags		TimeTracking
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		ListTimeEntriesReq						false	"entries started in [from, to), optionally of one user"
//	@Success	200		{object}	resputil.Response[[]model.TimeEntry]	"Newest first"
//	@Router		/api/v1/admin/time-entries [get]
func (mgr *TimeEntryMgr) ListAllTimeEntries(c *gin.Context) {
	mgr.list(c, c.Query("user_id"))
}

func (mgr *TimeEntryMgr) list(c *gin.Context, userID string) {
	var req ListTimeEntriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	entries, err := mgr.store.TimeEntries(c, userID, viewmodel.ParseDate(req.From), viewmodel.ParseDate(req.To))
	if err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, entries)
}

// CreateTimeEntry godoc
//
//	@Summary		Log time manually
//	@Description	The hours are added to the tracked time of the task
//	@Tags			TimeTracking
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			data	body		CreateTimeEntryReq					true	"entry"
//	@Success		200		{object}	resputil.Response[model.TimeEntry]	"Success"
//	@Failure		400		{object}	resputil.Response[any]				"Request parameter error"
//	@Router			/api/v1/time-entries [post]
func (mgr *TimeEntryMgr) CreateTimeEntry(c *gin.Context) {
	var req CreateTimeEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	entry, msg := req.toModel(util.GetToken(c).UserID)
	if entry == nil {
		resputil.BadRequestError(c, msg)
		return
	}
	if entry.TaskID != nil && entry.ProjectID == nil {
		task, err := mgr.store.Task(c, *entry.TaskID)
		if err != nil {
			resputil.DBError(c, err)
			return
		}
		entry.ProjectID = &task.ProjectID
	}
	if err := mgr.store.AddManualEntry(c, entry); err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, entry)
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
