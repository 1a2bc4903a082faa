package operations

import (
	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/pkg/reminder"
)

type (
	RemindOverdueReq struct {
		LookbackDays int `form:"lookback_days" binding:"min=0"`
	}
	SweepStaleTimersReq struct {
		MaxHours *int `form:"max_hours" binding:"omitempty,min=1"`
	}
)

// RemindOverdueTasks godoc
//
//	@Summary		Send overdue task digests now
//	@Description	Runs the overdue digest outside its schedule. Each assignee gets one message.
//	@Tags			Operations
//	@Produce		json
//	@Security		Bearer
//	@Param			query	query		RemindOverdueReq					false	"digest window"
//	@Success		200		{object}	resputil.Response[map[string][]string]	"Tasks reminded per assignee"
//	@Router			/api/v1/admin/operations/reminders/overdue [post]
func (mgr *OperationsMgr) RemindOverdueTasks(c *gin.Context) {
	var req RemindOverdueReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	reminded, err := reminder.RemindOverdueTasks(c, mgr.reminders, &reminder.RemindOverdueTasksRequest{
		LookbackDays: req.LookbackDays,
	})
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, reminded)
}

// SweepStaleTimers godoc
//
//	@Summary		Stop forgotten timers now
//	@Description	Timers running longer than max_hours are closed at the limit
//	@Tags			Operations
//	@Produce		json
//	@Security		Bearer
//	@Param			query	query		SweepStaleTimersReq						false	"limit in hours"
//	@Success		200		{object}	resputil.Response[map[string][]string]	"Stopped entry ids"
//	@Router			/api/v1/admin/operations/timers/stale [delete]
func (mgr *OperationsMgr) SweepStaleTimers(c *gin.Context) {
	var req SweepStaleTimersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	stopped, err := reminder.SweepStaleTimers(c, mgr.reminders, &reminder.SweepStaleTimersRequest{
		MaxHours: req.MaxHours,
	})
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, stopped)
}
