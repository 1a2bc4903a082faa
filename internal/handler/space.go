package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewSpaceMgr)
}

type SpaceMgr struct {
	name string
	db   *gorm.DB
}

func NewSpaceMgr(conf *RegisterConfig) Manager {
	return &SpaceMgr{
		name: "spaces",
		db:   conf.DB,
	}
}

func (mgr *SpaceMgr) GetName() string { return mgr.name }

func (mgr *SpaceMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *SpaceMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListSpaces)
	g.GET("/:id", mgr.GetSpace)
}

func (mgr *SpaceMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("", mgr.CreateSpace)
	g.PUT("/:id", mgr.UpdateSpace)
	g.DELETE("/:id", mgr.DeleteSpace)
}

type (
	CreateSpaceReq struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}
	UpdateSpaceReq struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
		Icon  *string `json:"icon"`
	}
)

// ListSpaces godoc
//
//	@Summary		List spaces
//	@Description	Spaces of the caller's workspace
//	@Tags			Space
//	@Produce		json
//	@Security		Bearer
//	@Param			page	query		payload.ListReqQuery						false	"paging"
//	@Success		200		{object}	resputil.Response[payload.ListResp[model.Space]]	"Success"
//	@Failure		500		{object}	resputil.Response[any]						"Other errors"
//	@Router			/api/v1/spaces [get]
func (mgr *SpaceMgr) ListSpaces(c *gin.Context) {
	token := util.GetToken(c)
	listRows[model.Space](c, mgr.db, func(db *gorm.DB) *gorm.DB {
		if token.WorkspaceID != "" {
			db = db.Where("workspace_id = ?", token.WorkspaceID)
		}
		return db
	})
}

// GetSpace godoc
//
//	@Summary	Get a space
//	@Tags		Space
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string								true	"space id"
//	@Success	200	{object}	resputil.Response[model.Space]	"Success"
//	@Failure	404	{object}	resputil.Response[any]				"Not found"
//	@Router		/api/v1/spaces/{id} [get]
func (mgr *SpaceMgr) GetSpace(c *gin.Context) {
	getRow[model.Space](c, mgr.db)
}

// CreateSpace godoc
//
//	@Summary	Create a space
//	@Tags		Space
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		CreateSpaceReq					true	"space"
//	@Success	200		{object}	resputil.Response[model.Space]	"Success"
//	@Failure	400		{object}	resputil.Response[any]			"Request parameter error"
//	@Router		/api/v1/admin/spaces [post]
func (mgr *SpaceMgr) CreateSpace(c *gin.Context) {
	var req CreateSpaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	space := &model.Space{
		WorkspaceID: util.GetToken(c).WorkspaceID,
		Name:        req.Name,
		Color:       req.Color,
		Icon:        req.Icon,
	}
	if err := query.Create(c, mgr.db, space); err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, space)
}

// UpdateSpace godoc
//
//	@Summary	Update a space
//	@Tags		Space
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		id		path		string							true	"space id"
//	@Param		data	body		UpdateSpaceReq					true	"changed fields"
//	@Success	200		{object}	resputil.Response[model.Space]	"Success"
//	@Router		/api/v1/admin/spaces/{id} [put]
func (mgr *SpaceMgr) UpdateSpace(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateSpaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	fields := map[string]any{}
	setIf(fields, "name", req.Name)
	setIf(fields, "color", req.Color)
	setIf(fields, "icon", req.Icon)
	updateRow[model.Space](c, mgr.db, id, fields)
}

// DeleteSpace godoc
//
//	@Summary	Delete a space
//	@Tags		Space
//	@Security	Bearer
//	@Param		id	path		string					true	"space id"
//	@Success	200	{object}	resputil.Response[any]	"Success"
//	@Router		/api/v1/admin/spaces/{id} [delete]
func (mgr *SpaceMgr) DeleteSpace(c *gin.Context) {
	deleteRow[model.Space](c, mgr.db)
}
