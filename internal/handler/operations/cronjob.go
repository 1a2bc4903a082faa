package operations

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/payload"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/pkg/cronjob"
)

type CronjobConfigs struct {
	Name     string         `json:"name" binding:"required"`
	Type     string         `json:"type"`
	Schedule string         `json:"schedule"`
	Suspend  bool           `json:"suspend"`
	Configs  map[string]any `json:"configs"`
}

// UpdateCronjobConfig godoc
//
//	@Summary		Update cronjob config
//	@Description	Update one cronjob config
//	@Tags			Operations
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			use	body		CronjobConfigs			true	"CronjobConfigs"
//	@Success		200	{object}	resputil.Response[any]	"Success"
//	@Failure		400	{object}	resputil.Response[any]	"Request parameter error"
//	@Failure		500	{object}	resputil.Response[any]	"Other errors"
//	@Router			/api/v1/admin/operations/cronjob [put]
func (mgr *OperationsMgr) UpdateCronjobConfig(c *gin.Context) {
	var req CronjobConfigs
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}

	var (
		jobTypePtr *model.CronJobType
		specPtr    *string
		configPtr  *string
	)
	if req.Type != "" {
		jobTypePtr = ptr.To(model.CronJobType(req.Type))
	}
	if req.Schedule != "" {
		specPtr = ptr.To(req.Schedule)
	}

	if len(req.Configs) > 0 {
		configJSON, err := json.Marshal(req.Configs)
		if err != nil {
			resputil.BadRequestError(c, err.Error())
			return
		}
		configPtr = ptr.To(string(configJSON))
	}
	if err := mgr.cronJobManager.UpdateJobConfig(c, req.Name, jobTypePtr, specPtr, &req.Suspend, configPtr); err != nil {
		if errors.Is(err, cronjob.ErrUnknownCronJob) {
			resputil.NotFoundError(c, err.Error())
			return
		}
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	resputil.Success(c, "Successfully update cronjob config")
}

// GetCronjobConfigs godoc
//
//	@Summary		Get all cronjob configs
//	@Description	Get all cronjob configs
//	@Tags			Operations
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{object}	resputil.Response[[]CronjobConfigs]	"Success"
//	@Failure		500	{object}	resputil.Response[any]				"Other errors"
//	@Router			/api/v1/admin/operations/cronjob [get]
func (mgr *OperationsMgr) GetCronjobConfigs(c *gin.Context) {
	jobs, err := mgr.cronJobManager.GetAllCronJobs(c)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.NotSpecified)
		return
	}
	configs := lo.Map(jobs, func(job *model.CronJobConfig, _ int) CronjobConfigs {
		config := make(map[string]any)
		if err := json.Unmarshal(job.Config, &config); err != nil {
			config = map[string]any{}
		}
		return CronjobConfigs{
			Name:     job.Name,
			Type:     string(job.Type),
			Schedule: job.Spec,
			Suspend:  job.GetSuspend(),
			Configs:  config,
		}
	})
	resputil.Success(c, configs)
}

type TriggerCronjobUri struct {
	Name string `uri:"name" binding:"required"`
}

// TriggerCronjob godoc
//
//	@Summary		Run a cronjob now
//	@Description	Runs the job once and records the execution like a scheduled run
//	@Tags			Operations
//	@Produce		json
//	@Security		Bearer
//	@Param			name	path		string					true	"cronjob name"
//	@Success		200		{object}	resputil.Response[any]	"Success"
//	@Failure		404		{object}	resputil.Response[any]	"Unknown cronjob"
//	@Router			/api/v1/admin/operations/cronjob/{name}/trigger [post]
func (mgr *OperationsMgr) TriggerCronjob(c *gin.Context) {
	var uri TriggerCronjobUri
	if err := c.ShouldBindUri(&uri); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := mgr.cronJobManager.TriggerCronJob(c, uri.Name); err != nil {
		if errors.Is(err, cronjob.ErrUnknownCronJob) {
			resputil.NotFoundError(c, err.Error())
			return
		}
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, nil)
}

// GetCronjobNames godoc
//
//	@Summary	List cronjob names
//	@Tags		Operations
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[[]string]	"Success"
//	@Router		/api/v1/admin/operations/cronjob/names [get]
func (mgr *OperationsMgr) GetCronjobNames(c *gin.Context) {
	names, err := mgr.cronJobManager.GetCronjobNames(c)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, names)
}

// GetCronjobRecordTimeRange godoc
//
//	@Summary	Time span of recorded executions
//	@Tags		Operations
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[map[string]time.Time]	"startTime and endTime"
//	@Router		/api/v1/admin/operations/cronjob/record-range [get]
func (mgr *OperationsMgr) GetCronjobRecordTimeRange(c *gin.Context) {
	startTime, endTime, err := mgr.cronJobManager.GetCronjobRecordTimeRange(c)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	resputil.Success(c, map[string]any{
		"startTime": startTime,
		"endTime":   endTime,
	})
}

type GetCronJobRecordsReq struct {
	Name      []string   `form:"name"`
	StartTime *time.Time `form:"startTime" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   *time.Time `form:"endTime" time_format:"2006-01-02T15:04:05Z07:00"`
	Status    *string    `form:"status"`
	PageIndex *int       `form:"page_index" binding:"omitempty,min=0"`
	PageSize  *int       `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// GetCronjobRecords godoc
//
//	@Summary	List cronjob executions
//	@Tags		Operations
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		GetCronJobRecordsReq										false	"filter and paging"
//	@Success	200		{object}	resputil.Response[payload.ListResp[model.CronJobRecord]]	"Newest first"
//	@Router		/api/v1/admin/operations/cronjob/records [get]
func (mgr *OperationsMgr) GetCronjobRecords(c *gin.Context) {
	req := &GetCronJobRecordsReq{}
	if err := c.ShouldBindQuery(req); err != nil {
		klog.Error(err)
		resputil.BadRequestError(c, err.Error())
		return
	}

	filter := cronjob.RecordFilter{
		Names:     req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if req.Status != nil {
		filter.Status = ptr.To(model.CronJobRecordStatus(*req.Status))
	}
	records, total, err := mgr.cronJobManager.GetCronjobRecords(c, filter, query.Paginate(req.PageIndex, req.PageSize))
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}

	resputil.Success(c, payload.ListResp[*model.CronJobRecord]{
		Rows:  records,
		Count: total,
	})
}

type DeleteCronJobRecordsReq struct {
	ID        []uint     `json:"id"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

// DeleteCronjobRecords godoc
//
//	@Summary	Delete cronjob executions
//	@Tags		Operations
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		DeleteCronJobRecordsReq				true	"ids or a time range"
//	@Success	200		{object}	resputil.Response[map[string]int64]	"Number of deleted records"
//	@Router		/api/v1/admin/operations/cronjob/records [delete]
func (mgr *OperationsMgr) DeleteCronjobRecords(c *gin.Context) {
	req := &DeleteCronJobRecordsReq{}
	if err := c.ShouldBindJSON(req); err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.InvalidRequest)
		return
	}

	if len(req.ID) == 0 && req.StartTime == nil && req.EndTime == nil {
		resputil.Error(c, "id or startTime or endTime is required", resputil.InvalidRequest)
		return
	}

	deleted, err := mgr.cronJobManager.DeleteCronjobRecords(c, req.ID, req.StartTime, req.EndTime)
	if err != nil {
		klog.Error(err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}

	resputil.Success(c, map[string]int64{
		"deleted": deleted,
	})
}
