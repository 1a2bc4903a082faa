package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewTaskMgr)
}

type TaskMgr struct {
	name string
	db   *gorm.DB
}

func NewTaskMgr(conf *RegisterConfig) Manager {
	return &TaskMgr{
		name: "tasks",
		db:   conf.DB,
	}
}

func (mgr *TaskMgr) GetName() string { return mgr.name }

func (mgr *TaskMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *TaskMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListTasks)
	g.GET("/:id", mgr.GetTask)
	g.POST("", mgr.CreateTask)
	g.PUT("/:id", mgr.UpdateTask)
	g.DELETE("/:id", mgr.DeleteTask)
}

func (mgr *TaskMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	ListTasksReq struct {
		ProjectID string           `form:"project_id"`
		Status    model.TaskStatus `form:"status"`
		Assignee  string           `form:"assignee"`
	}
	CreateTaskReq struct {
		ProjectID     string           `json:"projectId" binding:"required"`
		Title         string           `json:"title" binding:"required"`
		Description   string           `json:"description"`
		Status        model.TaskStatus `json:"status"`
		Priority      model.Priority   `json:"priority"`
		AssigneeIDs   []string         `json:"assigneeIds"`
		Tags          []string         `json:"tags"`
		StartDate     *string          `json:"startDate"`
		DueDate       *string          `json:"dueDate"`
		EstimateHours float64          `json:"estimateHours" binding:"min=0"`
		Progress      float64          `json:"progress"`
		ClientVisible bool             `json:"clientVisible"`
	}
	UpdateTaskReq struct {
		Title         *string           `json:"title"`
		Description   *string           `json:"description"`
		Status        *model.TaskStatus `json:"status"`
		Priority      *model.Priority   `json:"priority"`
		AssigneeIDs   *[]string         `json:"assigneeIds"`
		Tags          *[]string         `json:"tags"`
		StartDate     *string           `json:"startDate"`
		DueDate       *string           `json:"dueDate"`
		EstimateHours *float64          `json:"estimateHours" binding:"omitempty,min=0"`
		Progress      *float64          `json:"progress"`
		ClientVisible *bool             `json:"clientVisible"`
	}
)

func cleanList(values []string) datatypes.JSONSlice[string] {
	return datatypes.JSONSlice[string](splitValues(values))
}

func (req *CreateTaskReq) toModel(createdBy string) (*model.Task, error) {
	t := &model.Task{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Description:   req.Description,
		Status:        model.TaskTodo,
		Priority:      model.PriorityP3,
		AssigneeIDs:   cleanList(req.AssigneeIDs),
		Tags:          cleanList(req.Tags),
		EstimateHours: req.EstimateHours,
		Progress:      model.ClampProgress(req.Progress),
		ClientVisible: req.ClientVisible,
		CreatedBy:     createdBy,
	}
	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("unknown task status %q", req.Status)
		}
		t.Status = req.Status
	}
	if req.Priority != "" {
		if !req.Priority.Valid() {
			return nil, fmt.Errorf("unknown priority %q", req.Priority)
		}
		t.Priority = req.Priority
	}
	var ok bool
	if t.StartDate, ok = optionalDate(req.StartDate); !ok {
		return nil, fmt.Errorf("invalid startDate %q", *req.StartDate)
	}
	if t.DueDate, ok = optionalDate(req.DueDate); !ok {
		return nil, fmt.Errorf("invalid dueDate %q", *req.DueDate)
	}
	return t, nil
}

func (req *UpdateTaskReq) fields() (map[string]any, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("unknown task status %q", *req.Status)
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q", *req.Priority)
	}
	fields := map[string]any{}
	setIf(fields, "title", req.Title)
	setIf(fields, "description", req.Description)
	setIf(fields, "status", req.Status)
	setIf(fields, "priority", req.Priority)
	setIf(fields, "estimate_hours", req.EstimateHours)
	setIf(fields, "client_visible", req.ClientVisible)
	if req.AssigneeIDs != nil {
		fields["assignee_ids"] = cleanList(*req.AssigneeIDs)
	}
	if req.Tags != nil {
		fields["tags"] = cleanList(*req.Tags)
	}
	if req.Progress != nil {
		fields["progress"] = model.ClampProgress(*req.Progress)
	}
	if !setDate(fields, "start_date", req.StartDate) {
		return nil, fmt.Errorf("invalid startDate %q", *req.StartDate)
	}
	if !setDate(fields, "due_date", req.DueDate) {
		return nil, fmt.Errorf("invalid dueDate %q", *req.DueDate)
	}
	// Completing a task fills its progress unless the caller set one.
	if req.Status != nil && req.Status.Done() && req.Progress == nil {
		fields["progress"] = float64(100)
	}
	return fields, nil
}

// ListTasks godoc
//
//	@Summary	List tasks
//	@Tags		Task
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		ListTasksReq									false	"filter"
//	@Param		page	query		payload.ListReqQuery							false	"paging"
//	@Success	200		{object}	resputil.Response[payload.ListResp[model.Task]]	"Success"
//	@Router		/api/v1/tasks [get]
func (mgr *TaskMgr) ListTasks(c *gin.Context) {
	var req ListTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	listRows[model.Task](c, mgr.db, func(db *gorm.DB) *gorm.DB {
		if req.ProjectID != "" {
			db = db.Where("project_id = ?", req.ProjectID)
		}
		if req.Status != "" {
			db = db.Where("status = ?", req.Status)
		}
		if req.Assignee != "" {
			db = db.Where("assignee_ids @> ?", datatypes.JSONSlice[string]{req.Assignee})
		}
		return db
	})
}

// GetTask godoc
//
//	@Summary	Get a task
//	@Tags		Task
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string							true	"task id"
//	@Success	200	{object}	resputil.Response[model.Task]	"Success"
//	@Router		/api/v1/tasks/{id} [get]
func (mgr *TaskMgr) GetTask(c *gin.Context) {
	getRow[model.Task](c, mgr.db)
}

// CreateTask godoc
//
//	@Summary		Create a task
//	@Description	Status defaults to todo and priority to p3. Progress is clamped to [0, 100].
//	@Tags			Task
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			data	body		CreateTaskReq					true	"task"
//	@Success		200		{object}	resputil.Response[model.Task]	"Success"
//	@Failure		400		{object}	resputil.Response[any]			"Request parameter error"
//	@Router			/api/v1/tasks [post]
func (mgr *TaskMgr) CreateTask(c *gin.Context) {
	var req CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	task, err := req.toModel(util.GetToken(c).UserID)
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := query.Get[model.Project](c, mgr.db, req.ProjectID); err != nil {
		resputil.DBError(c, err)
		return
	}
	if err := query.Create(c, mgr.db, task); err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, task)
}

// UpdateTask godoc
//
//	@Summary	Update a task
//	@Tags		Task
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		string							true	"task id"
//	@Param		data	body		UpdateTaskReq					true	"changed fields"
//	@Success	200		{object}	resputil.Response[model.Task]	"Success"
//	@Router		/api/v1/tasks/{id} [put]
func (mgr *TaskMgr) UpdateTask(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	fields, err := req.fields()
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	updateRow[model.Task](c, mgr.db, id, fields)
}

// DeleteTask godoc
//
//	@Summary	Delete a task
//	@Tags		Task
//	@Security	Bearer
//	@Param		id	path		string					true	"task id"
//	@Success	200	{object}	resputil.Response[any]	"Success"
//	@Router		/api/v1/tasks/{id} [delete]
func (mgr *TaskMgr) DeleteTask(c *gin.Context) {
	deleteRow[model.Task](c, mgr.db)
}
