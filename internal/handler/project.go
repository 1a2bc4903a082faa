package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProjectMgr)
}

type ProjectMgr struct {
	name string
	db   *gorm.DB
}

func NewProjectMgr(conf *RegisterConfig) Manager {
	return &ProjectMgr{
		name: "projects",
		db:   conf.DB,
	}
}

func (mgr *ProjectMgr) GetName() string { return mgr.name }

func (mgr *ProjectMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ProjectMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListProjects)
	g.GET("/:id", mgr.GetProject)
	g.POST("", mgr.CreateProject)
	g.PUT("/:id", mgr.UpdateProject)
	g.DELETE("/:id", mgr.DeleteProject)
}

func (mgr *ProjectMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	ListProjectsReq struct {
		FolderID string              `form:"folder_id"`
		Status   model.ProjectStatus `form:"status"`
	}
	CreateProjectReq struct {
		FolderID      string              `json:"folderId" binding:"required"`
		Name          string              `json:"name" binding:"required"`
		Description   string              `json:"description"`
		Type          model.ProjectType   `json:"type"`
		Status        model.ProjectStatus `json:"status"`
		Budget        *float64            `json:"budget" binding:"omitempty,min=0"`
		HourlyRate    *float64            `json:"hourlyRate" binding:"omitempty,min=0"`
		StartDate     *string             `json:"startDate"`
		DueDate       *string             `json:"dueDate"`
		ClientVisible bool                `json:"clientVisible"`
	}
	UpdateProjectReq struct {
		Name          *string              `json:"name"`
		Description   *string              `json:"description"`
		Type          *model.ProjectType   `json:"type"`
		Status        *model.ProjectStatus `json:"status"`
		Budget        *float64             `json:"budget" binding:"omitempty,min=0"`
		HourlyRate    *float64             `json:"hourlyRate" binding:"omitempty,min=0"`
		StartDate     *string              `json:"startDate"`
		DueDate       *string              `json:"dueDate"`
		ClientVisible *bool                `json:"clientVisible"`
	}
)

func (req *CreateProjectReq) toModel() (*model.Project, error) {
	p := &model.Project{
		FolderID:      req.FolderID,
		Name:          req.Name,
		Description:   req.Description,
		Type:          model.ProjectTypeClient,
		Status:        model.ProjectPlanning,
		Budget:        req.Budget,
		HourlyRate:    req.HourlyRate,
		ClientVisible: req.ClientVisible,
	}
	if req.Type != "" {
		if !req.Type.Valid() {
			return nil, fmt.Errorf("unknown project type %q", req.Type)
		}
		p.Type = req.Type
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("unknown project status %q", req.Status)
		}
		p.Status = req.Status
	}
	var ok bool
	if p.StartDate, ok = optionalDate(req.StartDate); !ok {
		return nil, fmt.Errorf("invalid startDate %q", *req.StartDate)
	}
	if p.DueDate, ok = optionalDate(req.DueDate); !ok {
		return nil, fmt.Errorf("invalid dueDate %q", *req.DueDate)
	}
	return p, nil
}

func (req *UpdateProjectReq) fields() (map[string]any, error) {
	fields := map[string]any{}
	if req.Type != nil && !req.Type.Valid() {
		return nil, fmt.Errorf("unknown project type %q", *req.Type)
	}
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("unknown project status %q", *req.Status)
	}
	setIf(fields, "name", req.Name)
	setIf(fields, "description", req.Description)
	setIf(fields, "type", req.Type)
	setIf(fields, "status", req.Status)
	setIf(fields, "budget", req.Budget)
	setIf(fields, "hourly_rate", req.HourlyRate)
	setIf(fields, "client_visible", req.ClientVisible)
	if !setDate(fields, "start_date", req.StartDate) {
		return nil, fmt.Errorf("invalid startDate %q", *req.StartDate)
	}
	if !setDate(fields, "due_date", req.DueDate) {
		return nil, fmt.Errorf("invalid dueDate %q", *req.DueDate)
	}
	return fields, nil
}

// ListProjects godoc
//
//	@Summary	List projects
//	@Tags		Project
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		ListProjectsReq										false	"filter"
//	@Param		page	query		payload.ListReqQuery									false	"paging"
//	@Success	200		{object}	resputil.Response[payload.ListResp[model.Project]]	"Success"
//	@Router		/api/v1/projects [get]
func (mgr *ProjectMgr) ListProjects(c *gin.Context) {
	var req ListProjectsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	listRows[model.Project](c, mgr.db, func(db *gorm.DB) *gorm.DB {
		if req.FolderID != "" {
			db = db.Where("folder_id = ?", req.FolderID)
		}
		if req.Status != "" {
			db = db.Where("status = ?", req.Status)
		}
		return db
	})
}

// GetProject godoc
//
//	@Summary	Get a project
//	@Tags		Project
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string								true	"project id"
//	@Success	200	{object}	resputil.Response[model.Project]	"Success"
//	@Router		/api/v1/projects/{id} [get]
func (mgr *ProjectMgr) GetProject(c *gin.Context) {
	getRow[model.Project](c, mgr.db)
}

// CreateProject godoc
//
//	@Summary	Create a project
//	@Tags		Project
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		CreateProjectReq					true	"project"
//	@Success	200		{object}	resputil.Response[model.Project]	"Success"
//	@Failure	400		{object}	resputil.Response[any]				"Request parameter error"
//	@Router		/api/v1/projects [post]
func (mgr *ProjectMgr) CreateProject(c *gin.Context) {
	var req CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	project, err := req.toModel()
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := query.Get[model.Folder](c, mgr.db, req.FolderID); err != nil {
		resputil.DBError(c, err)
		return
	}
	if err := query.Create(c, mgr.db, project); err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, project)
}

// UpdateProject godoc
//
//	@Summary	Update a project
//	@Tags		Project
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		string								true	"project id"
//	@Param		data	body		UpdateProjectReq					true	"changed fields"
//	@Success	200		{object}	resputil.Response[model.Project]	"Success"
//	@Router		/api/v1/projects/{id} [put]
func (mgr *ProjectMgr) UpdateProject(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	fields, err := req.fields()
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	updateRow[model.Project](c, mgr.db, id, fields)
}

// DeleteProject godoc
//
//	@Summary	Delete a project
//	@Tags		Project
//	@Security	Bearer
//	@Param		id	path		string					true	"project id"
//	@Success	200	{object}	resputil.Response[any]	"Success"
//	@Router		/api/v1/projects/{id} [delete]
func (mgr *ProjectMgr) DeleteProject(c *gin.Context) {
	deleteRow[model.Project](c, mgr.db)
}

// optionalDate parses an optional date. The bool is false only for a value that does not parse.
func optionalDate(v *string) (*time.Time, bool) {
	if v == nil || *v == "" {
		return nil, true
	}
	t := viewmodel.ParseDate(*v)
	return t, t != nil
}
