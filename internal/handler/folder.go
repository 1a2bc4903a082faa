package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewFolderMgr)
}

type FolderMgr struct {
	name string
	db   *gorm.DB
}

func NewFolderMgr(conf *RegisterConfig) Manager {
	return &FolderMgr{
		name: "folders",
		db:   conf.DB,
	}
}

func (mgr *FolderMgr) GetName() string { return mgr.name }

func (mgr *FolderMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *FolderMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListFolders)
	g.GET("/:id", mgr.GetFolder)
	g.POST("", mgr.CreateFolder)
	g.PUT("/:id", mgr.UpdateFolder)
}

func (mgr *FolderMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.DELETE("/:id", mgr.DeleteFolder)
}

type (
	ListFoldersReq struct {
		SpaceID         string `form:"space_id"`
		IncludeArchived bool   `form:"include_archived"`
	}
	CreateFolderReq struct {
		SpaceID    string  `json:"spaceId" binding:"required"`
		Name       string  `json:"name" binding:"required"`
		ClientName *string `json:"clientName"`
	}
	UpdateFolderReq struct {
		Name       *string `json:"name"`
		ClientName *string `json:"clientName"`
		Archived   *bool   `json:"archived"`
	}
)

// ListFolders godoc
//
//	@Summary	List folders
//	@Tags		Folder
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		ListFoldersReq									false	"filter"
//	@Param		page	query		payload.ListReqQuery								false	"paging"
//	@Success	200		{object}	resputil.Response[payload.ListResp[model.Folder]]	"Success"
//	@Router		/api/v1/folders [get]
func (mgr *FolderMgr) ListFolders(c *gin.Context) {
	var req ListFoldersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	listRows[model.Folder](c, mgr.db, func(db *gorm.DB) *gorm.DB {
		if req.SpaceID != "" {
			db = db.Where("space_id = ?", req.SpaceID)
		}
		if !req.IncludeArchived {
			db = db.Where("archived = ?", false)
		}
		return db
	})
}

// GetFolder godoc
//
//	@Summary	Get a folder
//	@Tags		Folder
//	@Produce	json
//	@Security	Bearer
//	@Param		id	path		string							true	"folder id"
//	@Success	200	{object}	resputil.Response[model.Folder]	"Success"
//	@Router		/api/v1/folders/{id} [get]
func (mgr *FolderMgr) GetFolder(c *gin.Context) {
	getRow[model.Folder](c, mgr.db)
}

// CreateFolder godoc
//
//	@Summary	Create a folder
//	@Tags		Folder
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		CreateFolderReq					true	"folder"
//	@Success	200		{object}	resputil.Response[model.Folder]	"Success"
//	@Router		/api/v1/folders [post]
func (mgr *FolderMgr) CreateFolder(c *gin.Context) {
	var req CreateFolderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if _, err := query.Get[model.Space](c, mgr.db, req.SpaceID); err != nil {
		resputil.DBError(c, err)
		return
	}
	folder := &model.Folder{
		SpaceID:    req.SpaceID,
		Name:       req.Name,
		ClientName: req.ClientName,
	}
	if err := query.Create(c, mgr.db, folder); err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, folder)
}

// UpdateFolder godoc
//
//	@Summary		Update a folder
//	@Description	Archiving a folder hides its projects from views
//	@Tags			Folder
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		string							true	"folder id"
//	@Param			data	body		UpdateFolderReq					true	"changed fields"
//	@Success		200		{object}	resputil.Response[model.Folder]	"Success"
//	@Router			/api/v1/folders/{id} [put]
func (mgr *FolderMgr) UpdateFolder(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateFolderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	fields := map[string]any{}
	setIf(fields, "name", req.Name)
	setIf(fields, "client_name", req.ClientName)
	setIf(fields, "archived", req.Archived)
	updateRow[model.Folder](c, mgr.db, id, fields)
}

// DeleteFolder godoc
//
//	@Summary	Delete a folder
//	@Tags		Folder
//	@Security	Bearer
//	@Param		id	path		string					true	"folder id"
//	@Success	200	{object}	resputil.Response[any]	"Success"
//	@Router		/api/v1/admin/folders/{id} [delete]
func (mgr *FolderMgr) DeleteFolder(c *gin.Context) {
	deleteRow[model.Folder](c, mgr.db)
}
