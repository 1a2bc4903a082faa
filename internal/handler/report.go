package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/logutils"
	"github.com/raids-lab/agencyos/pkg/report"
	"github.com/raids-lab/agencyos/pkg/utils"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewReportMgr)
}

type ReportMgr struct {
	name   string
	loader CollectionLoader
	now    func() time.Time
}

func NewReportMgr(conf *RegisterConfig) Manager {
	return &ReportMgr{
		name:   "reports",
		loader: conf.Loader(),
		now:    utils.GetLocalTime,
	}
}

func (mgr *ReportMgr) GetName() string { return mgr.name }

func (mgr *ReportMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ReportMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/projects", mgr.ProjectReport)
}

func (mgr *ReportMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	ProjectReportReq struct {
		SpaceID  string   `form:"space_id"`
		FolderID string   `form:"folder_id"`
		Status   []string `form:"status"`
	}
	ProjectReportResp struct {
		Projects []report.ProjectSummary `json:"projects"`
		Totals   report.Totals           `json:"totals"`
	}
)

// ProjectReport godoc
//
//	@Summary		Summarize projects
//	@Description	Task counts by status, overdue tasks, estimated against tracked hours and budget burn per project
//	@Tags			Report
//	@Produce		json
//	@Security		Bearer
//	@Param			query	query		ProjectReportReq						false	"scope and project status"
//	@Success		200		{object}	resputil.Response[ProjectReportResp]	"Success"
//	@Router			/api/v1/reports/projects [get]
func (mgr *ReportMgr) ProjectReport(c *gin.Context) {
	var req ProjectReportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	collections, err := mgr.loader.LoadCollections(c, (&ViewReq{
		SpaceID:  req.SpaceID,
		FolderID: req.FolderID,
	}).Scope(util.GetToken(c)))
	if err != nil {
		logutils.Log.Errorf("load report collections: %v", err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}

	projects := viewmodel.ApplyFilter(
		viewmodel.ResolveProjectRecords(collections),
		viewmodel.FilterSpec{Status: splitValues(req.Status)},
	)
	projects, err = viewmodel.SortRecords(projects, viewmodel.SortSpec{Field: viewmodel.SortByDueDate})
	if err != nil {
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	summaries := report.SummarizeProjects(projects, collections.Tasks, mgr.now())
	resputil.Success(c, ProjectReportResp{
		Projects: summaries,
		Totals:   report.Total(summaries),
	})
}
