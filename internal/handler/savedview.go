package handler

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewSavedViewMgr)
}

var errNotOwner = errors.New("saved view belongs to another user")

type SavedViewMgr struct {
	name   string
	db     *gorm.DB
	loader CollectionLoader
	views  viewSettings
}

func NewSavedViewMgr(conf *RegisterConfig) Manager {
	return &SavedViewMgr{
		name:   "saved-views",
		db:     conf.DB,
		loader: conf.Loader(),
		views:  newViewSettings(conf.Config),
	}
}

func (mgr *SavedViewMgr) GetName() string { return mgr.name }

func (mgr *SavedViewMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *SavedViewMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListSavedViews)
	g.GET("/:id", mgr.GetSavedView)
	g.GET("/:id/render", mgr.RenderSavedView)
	g.POST("", mgr.CreateSavedView)
	g.PUT("/:id", mgr.UpdateSavedView)
	g.DELETE("/:id", mgr.DeleteSavedView)
}

func (mgr *SavedViewMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type (
	SavedViewReq struct {
		Name    string                `json:"name" binding:"required"`
		Entity  model.SavedViewEntity `json:"entity"`
		View    viewmodel.ViewShape   `json:"view"`
		SpaceID *string               `json:"spaceId"`
		Filter  viewmodel.FilterSpec  `json:"filter"`
		Sort    viewmodel.SortSpec    `json:"sort"`
		Shared  bool                  `json:"shared"`
	}
	RenderSavedViewReq struct {
		From string `form:"from"`
		To   string `form:"to"`
	}
)

// toModel validates the request before it is stored.
func (req *SavedViewReq) toModel(ownerID string) (*model.SavedView, error) {
	entity := req.Entity
	switch entity {
	case "":
		entity = model.SavedViewTasks
	case model.SavedViewTasks, model.SavedViewProjects:
	default:
		return nil, fmt.Errorf("unknown entity %q", entity)
	}
	shape, err := viewmodel.ParseViewShape(string(req.View))
	if err != nil {
		return nil, err
	}
	if err := req.Sort.Validate(); err != nil {
		return nil, err
	}
	filter, err := json.Marshal(req.Filter)
	if err != nil {
		return nil, err
	}
	sort, err := json.Marshal(req.Sort)
	if err != nil {
		return nil, err
	}
	return &model.SavedView{
		OwnerID: ownerID,
		Name:    req.Name,
		Entity:  entity,
		View:    string(shape),
		SpaceID: req.SpaceID,
		Filter:  datatypes.JSON(filter),
		Sort:    datatypes.JSON(sort),
		Shared:  req.Shared,
	}, nil
}

// SavedQuery decodes the stored filter and sort of a saved view.
func SavedQuery(sv *model.SavedView) (viewmodel.Query, error) {
	q := viewmodel.Query{View: viewmodel.ViewShape(sv.View)}
	if len(sv.Filter) > 0 {
		if err := json.Unmarshal(sv.Filter, &q.Filter); err != nil {
			return q, fmt.Errorf("decode filter of saved view %s: %w", sv.ID, err)
		}
	}
	if len(sv.Sort) > 0 {
		if err := json.Unmarshal(sv.Sort, &q.Sort); err != nil {
			return q, fmt.Errorf("decode sort of saved view %s: %w", sv.ID, err)
		}
	}
	return q, nil
}

// visible loads a saved view the caller owns or that is shared.
func (mgr *SavedViewMgr) visible(c *gin.Context, id string, mustOwn bool) (*model.SavedView, error) {
	sv, err := query.Get[model.SavedView](c, mgr.db, id)
	if err != nil {
		return nil, err
	}
	userID := util.GetToken(c).UserID
	if sv.OwnerID == userID || (sv.Shared && !mustOwn) {
		return sv, nil
	}
	if mustOwn {
		return nil, errNotOwner
	}
	return nil, gorm.ErrRecordNotFound
}

func savedViewError(c *gin.Context, err error) {
	if errors.Is(err, errNotOwner) {
		resputil.Error(c, err.Error(), resputil.UserNotAllowed)
		return
	}
	resputil.DBError(c, err)
}

// ListSavedViews godoc
//
//	@Summary	List saved views
//	@Tags		SavedView
//	@Produce	json
//	@Security	Bearer
//	@Param		page	query		payload.ListReqQuery									false	"paging"
//	@Success	200		{object}	resputil.Response[payload.ListResp[model.SavedView]]	"Own and shared saved views"
//	@Router		/api/v1/saved-views [get]
func (mgr *SavedViewMgr) ListSavedViews(c *gin.Context) {
	userID := util.GetToken(c).UserID
	listRows[model.SavedView](c, mgr.db, func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ? OR shared = ?", userID, true)
	})
}

// GetSavedView godoc
//
//	@Summary	Get a saved view
//	@Tags		SavedView
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string								true	"saved view id"
//	@Success	200	{object}	resputil.Response[model.SavedView]	"Success"
//	@Router		/api/v1/saved-views/{id} [get]
func (mgr *SavedViewMgr) GetSavedView(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	sv, err := mgr.visible(c, id, false)
	if err != nil {
		savedViewError(c, err)
		return
	}
	resputil.Success(c, sv)
}

// RenderSavedView godoc
//
//	@Summary		Render a saved view
//	@Description	Runs the stored filter, sort and view shape against current data
//	@Tags			SavedView
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		string					true	"saved view id"
//	@Param			query	query		RenderSavedViewReq		false	"calendar and gantt window"
//	@Success		200		{object}	resputil.Response[any]	"A task or project composition"
//	@Router			/api/v1/saved-views/{id}/render [get]
func (mgr *SavedViewMgr) RenderSavedView(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req RenderSavedViewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	sv, err := mgr.visible(c, id, false)
	if err != nil {
		savedViewError(c, err)
		return
	}
	q, err := SavedQuery(sv)
	if err != nil {
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}

	scope := query.Scope{WorkspaceID: util.GetToken(c).WorkspaceID}
	if sv.SpaceID != nil {
		scope.SpaceID = *sv.SpaceID
	}
	opts := mgr.views.options(req.From, req.To, nil)
	if sv.Entity == model.SavedViewProjects {
		renderProjects(c, mgr.loader, scope, q, opts)
		return
	}
	renderTasks(c, mgr.loader, scope, q, opts)
}

// CreateSavedView godoc
//
//	@Summary	Save a view
//	@Tags		SavedView
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		SavedViewReq						true	"saved view"
//	@Success	200		{object}	resputil.Response[model.SavedView]	"Success"
//	@Failure	400		{object}	resputil.Response[any]				"Unknown view, sort field or direction"
//	@Router		/api/v1/saved-views [post]
func (mgr *SavedViewMgr) CreateSavedView(c *gin.Context) {
	var req SavedViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	sv, err := req.toModel(util.GetToken(c).UserID)
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if err := query.Create(c, mgr.db, sv); err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, sv)
}

// UpdateSavedView godoc
//
//	@Summary	Replace a saved view
//	@Tags		SavedView
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		string								true	"saved view id"
//	@Param		data	body		SavedViewReq						true	"saved view"
//	@Success	200		{object}	resputil.Response[model.SavedView]	"Success"
//	@Failure	403		{object}	resputil.Response[any]				"Not the owner"
//	@Router		/api/v1/saved-views/{id} [put]
func (mgr *SavedViewMgr) UpdateSavedView(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req SavedViewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	next, err := req.toModel(util.GetToken(c).UserID)
	if err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := mgr.visible(c, id, true); err != nil {
		savedViewError(c, err)
		return
	}
	updateRow[model.SavedView](c, mgr.db, id, map[string]any{
		"name":     next.Name,
		"entity":   next.Entity,
		"view":     next.View,
		"space_id": next.SpaceID,
		"filter":   next.Filter,
		"sort":     next.Sort,
		"shared":   next.Shared,
	})
}

// DeleteSavedView godoc
//
//	@Summary	Delete a saved view
//	@Tags		SavedView
//	@Security	Bearer
//	@Param		id	path		string					true	"saved view id"
//	@Success	200	{object}	resputil.Response[any]	"Success"
//	@Failure	403	{object}	resputil.Response[any]	"Not the owner"
//	@Router		/api/v1/saved-views/{id} [delete]
func (mgr *SavedViewMgr) DeleteSavedView(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	if _, err := mgr.visible(c, id, true); err != nil {
		savedViewError(c, err)
		return
	}
	deleteRow[model.SavedView](c, mgr.db)
}
