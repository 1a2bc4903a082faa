package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/logutils"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewViewMgr)
}

type ViewMgr struct {
	name   string
	loader CollectionLoader
	state  *appstate.Store
	views  viewSettings
}

// viewSettings are the configured defaults applied to every rendered view.
type viewSettings struct {
	ganttUnit       time.Duration
	calendarMaxDays int
}

func newViewSettings(conf *config.Config) viewSettings {
	if conf == nil {
		return viewSettings{}
	}
	return viewSettings{
		ganttUnit:       time.Duration(conf.Views.GanttUnitHours) * time.Hour,
		calendarMaxDays: conf.Views.CalendarMaxDays,
	}
}

func NewViewMgr(conf *RegisterConfig) Manager {
	return &ViewMgr{
		name:   "views",
		loader: conf.Loader(),
		state:  conf.State,
		views:  newViewSettings(conf.Config),
	}
}

func (mgr *ViewMgr) GetName() string { return mgr.name }

func (mgr *ViewMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ViewMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("/tasks", mgr.TaskView)
	g.GET("/projects", mgr.ProjectView)
}

func (mgr *ViewMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// ViewReq is the query string of a rendered view.
type ViewReq struct {
	View string `form:"view"`

	Status        []string `form:"status"`
	Priority      []string `form:"priority"`
	Assignee      []string `form:"assignee"`
	Tag           []string `form:"tag"`
	DueStart      string   `form:"due_start"`
	DueEnd        string   `form:"due_end"`
	Search        string   `form:"search"`
	ClientVisible *bool    `form:"client_visible"`

	Sort  string `form:"sort"`
	Order string `form:"order"`

	SpaceID   string `form:"space_id"`
	FolderID  string `form:"folder_id"`
	ProjectID string `form:"project_id"`

	// From and To bound the calendar and gantt windows.
	From string `form:"from"`
	To   string `form:"to"`
}

func (req *ViewReq) Filter() viewmodel.FilterSpec {
	f := viewmodel.FilterSpec{
		Status:        splitValues(req.Status),
		Assignees:     splitValues(req.Assignee),
		Tags:          splitValues(req.Tag),
		Search:        req.Search,
		ClientVisible: req.ClientVisible,
	}
	f.Priority = lo.Map(splitValues(req.Priority), func(p string, _ int) model.Priority {
		return model.Priority(p)
	})
	if req.DueStart != "" || req.DueEnd != "" {
		f.DueDate = &viewmodel.DateRange{Start: req.DueStart, End: req.DueEnd}
	}
	return f
}

func (req *ViewReq) Query() viewmodel.Query {
	return viewmodel.Query{
		Filter: req.Filter(),
		Sort: viewmodel.SortSpec{
			Field:     viewmodel.SortField(req.Sort),
			Direction: viewmodel.SortDirection(req.Order),
		},
		View: viewmodel.ViewShape(req.View),
	}
}

func (req *ViewReq) Scope(token util.JWTMessage) query.Scope {
	return query.Scope{
		WorkspaceID: token.WorkspaceID,
		SpaceID:     req.SpaceID,
		FolderID:    req.FolderID,
		ProjectID:   req.ProjectID,
	}
}

// options builds the shape inputs from the window parameters.
func (s viewSettings) options(from, to string, statuses []string) viewmodel.ComposeOptions {
	opts := viewmodel.ComposeOptions{
		Statuses:  statuses,
		GanttUnit: s.ganttUnit,
		Calendar: viewmodel.CalendarOptions{
			From:    viewmodel.ParseDate(from),
			To:      viewmodel.ParseDate(to),
			MaxDays: s.calendarMaxDays,
		},
	}
	if opts.Calendar.From != nil && opts.Calendar.To != nil {
		window := viewmodel.DayWindow(*opts.Calendar.From, *opts.Calendar.To, s.ganttUnit)
		opts.Gantt = &window
	}
	return opts
}

// resolveShape falls back to the caller's current view when the request names none.
func (mgr *ViewMgr) resolveShape(c *gin.Context, q *viewmodel.Query) {
	if q.View != "" || mgr.state == nil {
		return
	}
	q.View = mgr.state.Get(util.GetToken(c).UserID).CurrentView
}

// viewError answers engine errors with 400 and everything else with 500.
func viewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, viewmodel.ErrUnknownView),
		errors.Is(err, viewmodel.ErrUnknownSortField),
		errors.Is(err, viewmodel.ErrUnknownSortDirection),
		errors.Is(err, viewmodel.ErrInvalidWindow):
		resputil.BadRequestError(c, err.Error())
	default:
		logutils.Log.Errorf("render view: %v", err)
		resputil.Error(c, err.Error(), resputil.ServiceError)
	}
}

func renderTasks(c *gin.Context, loader CollectionLoader, scope query.Scope, q viewmodel.Query, opts viewmodel.ComposeOptions) {
	collections, err := loader.LoadCollections(c, scope)
	if err != nil {
		viewError(c, err)
		return
	}
	if opts.Statuses == nil {
		opts.Statuses = viewmodel.TaskBoardColumns()
	}
	out, err := viewmodel.Run(viewmodel.ResolveTaskRecords(collections), q, opts)
	if err != nil {
		viewError(c, err)
		return
	}
	resputil.Success(c, out)
}

func renderProjects(c *gin.Context, loader CollectionLoader, scope query.Scope, q viewmodel.Query, opts viewmodel.ComposeOptions) {
	collections, err := loader.LoadCollections(c, scope)
	if err != nil {
		viewError(c, err)
		return
	}
	if opts.Statuses == nil {
		opts.Statuses = viewmodel.ProjectBoardColumns()
	}
	out, err := viewmodel.Run(viewmodel.ResolveProjectRecords(collections), q, opts)
	if err != nil {
		viewError(c, err)
		return
	}
	resputil.Success(c, out)
}

// TaskView godoc
//
//	@Summary		Render tasks as a view
//	@Description	Joins tasks with their project, folder and space, then filters, sorts and shapes them as list, board, calendar or gantt
//	@Tags			View
//	@Produce		json
//	@Security		Bearer
//	@Param			query	query		ViewReq																false	"view, filter, sort, scope and window"
//	@Success		200		{object}	resputil.Response[viewmodel.Composition[viewmodel.TaskRecord]]	"Success"
//	@Failure		400		{object}	resputil.Response[any]												"Unknown view, sort field or direction"
//	@Failure		500		{object}	resputil.Response[any]												"Other errors"
//	@Router			/api/v1/views/tasks [get]
func (mgr *ViewMgr) TaskView(c *gin.Context) {
	var req ViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	q := req.Query()
	mgr.resolveShape(c, &q)
	renderTasks(c, mgr.loader, req.Scope(util.GetToken(c)), q, mgr.views.options(req.From, req.To, nil))
}

// ProjectView godoc
//
//	@Summary		Render projects as a view
//	@Description	Projects carry task counts, mean progress and hour totals rolled up from their tasks
//	@Tags			View
//	@Produce		json
//	@Security		Bearer
//	@Param			query	query		ViewReq																	false	"view, filter, sort, scope and window"
//	@Success		200		{object}	resputil.Response[viewmodel.Composition[viewmodel.ProjectRecord]]	"Success"
//	@Failure		400		{object}	resputil.Response[any]													"Unknown view, sort field or direction"
//	@Router			/api/v1/views/projects [get]
func (mgr *ViewMgr) ProjectView(c *gin.Context) {
	var req ViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	q := req.Query()
	mgr.resolveShape(c, &q)
	renderProjects(c, mgr.loader, req.Scope(util.GetToken(c)), q, mgr.views.options(req.From, req.To, nil))
}
