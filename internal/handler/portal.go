package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewPortalMgr)
}

// PortalMgr serves client accounts. They see only client-visible work in the folders
// assigned to their profile, as a list or a board.
type PortalMgr struct {
	name     string
	loader   CollectionLoader
	profiles ProfileStore
}

func NewPortalMgr(conf *RegisterConfig) Manager {
	mgr := &PortalMgr{
		name:   "portal",
		loader: conf.Loader(),
	}
	if conf.Store != nil {
		mgr.profiles = conf.Store
	}
	return mgr
}

func (mgr *PortalMgr) GetName() string { return mgr.name }

func (mgr *PortalMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *PortalMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *PortalMgr) RegisterAdmin(_ *gin.RouterGroup) {}

func (mgr *PortalMgr) RegisterPortal(g *gin.RouterGroup) {
	g.GET("/tasks", mgr.PortalTasks)
	g.GET("/projects", mgr.PortalProjects)
}

// PortalViewReq is the subset of ViewReq open to clients.
type PortalViewReq struct {
	View     string   `form:"view"`
	Status   []string `form:"status"`
	Search   string   `form:"search"`
	Sort     string   `form:"sort"`
	Order    string   `form:"order"`
	FolderID string   `form:"folder_id"`
}

func (req *PortalViewReq) query() (viewmodel.Query, error) {
	shape, err := viewmodel.ParseViewShape(req.View)
	if err != nil {
		return viewmodel.Query{}, err
	}
	if shape != viewmodel.ViewList && shape != viewmodel.ViewBoard {
		return viewmodel.Query{}, fmt.Errorf("%w: %q is not available in the portal", viewmodel.ErrUnknownView, shape)
	}
	return viewmodel.Query{
		Filter: viewmodel.FilterSpec{Status: splitValues(req.Status), Search: req.Search},
		Sort: viewmodel.SortSpec{
			Field:     viewmodel.SortField(req.Sort),
			Direction: viewmodel.SortDirection(req.Order),
		},
		View: shape,
	}, nil
}

// portalScope restricts loading to the caller's client folders.
func (mgr *PortalMgr) portalScope(c *gin.Context, req *PortalViewReq) (query.Scope, bool) {
	profile, err := currentProfile(c, mgr.profiles)
	if err != nil {
		resputil.DBError(c, err)
		return query.Scope{}, false
	}
	folders := []string(profile.ClientFolderIDs)
	if folders == nil {
		folders = []string{}
	}
	if req.FolderID != "" {
		folders = []string{}
		for _, id := range profile.ClientFolderIDs {
			if id == req.FolderID {
				folders = append(folders, id)
			}
		}
	}
	return query.Scope{FolderIDs: folders, ClientVisible: true}, true
}

func (mgr *PortalMgr) bind(c *gin.Context) (viewmodel.Query, query.Scope, bool) {
	var req PortalViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return viewmodel.Query{}, query.Scope{}, false
	}
	q, err := req.query()
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return viewmodel.Query{}, query.Scope{}, false
	}
	scope, ok := mgr.portalScope(c, &req)
	return q, scope, ok
}

// PortalTasks godoc
//
//	@Summary	Client-visible tasks
//	@Tags		Portal
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		PortalViewReq														false	"list or board"
//	@Success	200		{object}	resputil.Response[viewmodel.Composition[viewmodel.TaskRecord]]	"Success"
//	@Router		/api/v1/portal/tasks [get]
func (mgr *PortalMgr) PortalTasks(c *gin.Context) {
	q, scope, ok := mgr.bind(c)
	if !ok {
		return
	}
	renderTasks(c, mgr.loader, scope, q, viewmodel.ComposeOptions{})
}

// PortalProjects godoc
//
//	@Summary	Client-visible projects
//	@Tags		Portal
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		PortalViewReq															false	"list or board"
//	@Success	200		{object}	resputil.Response[viewmodel.Composition[viewmodel.ProjectRecord]]	"Success"
//	@Router		/api/v1/portal/projects [get]
func (mgr *PortalMgr) PortalProjects(c *gin.Context) {
	q, scope, ok := mgr.bind(c)
	if !ok {
		return
	}
	renderProjects(c, mgr.loader, scope, q, viewmodel.ComposeOptions{})
}
