package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewProfileMgr)
}

// ProfileStore looks up profiles by id.
type ProfileStore interface {
	Profiles(ctx context.Context, ids []string) ([]model.Profile, error)
}

// currentProfile loads the profile of the token subject.
func currentProfile(c *gin.Context, store ProfileStore) (*model.Profile, error) {
	userID := util.GetToken(c).UserID
	profiles, err := store.Profiles(c, []string{userID})
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("profile %s: %w", userID, gorm.ErrRecordNotFound)
	}
	return &profiles[0], nil
}

type ProfileMgr struct {
	name     string
	db       *gorm.DB
	profiles ProfileStore
}

func NewProfileMgr(conf *RegisterConfig) Manager {
	mgr := &ProfileMgr{
		name: "profiles",
		db:   conf.DB,
	}
	if conf.Store != nil {
		mgr.profiles = conf.Store
	}
	return mgr
}

func (mgr *ProfileMgr) GetName() string { return mgr.name }

func (mgr *ProfileMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *ProfileMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.ListProfiles)
	g.GET("/me", mgr.GetMyProfile)
}

func (mgr *ProfileMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.PUT("/:id", mgr.UpdateProfile)
}

// RegisterPortal lets clients read their own profile.
func (mgr *ProfileMgr) RegisterPortal(g *gin.RouterGroup) {
	g.GET("/me", mgr.GetMyProfile)
}

type (
	ListProfilesReq struct {
		Role model.Role `form:"role"`
	}
	UpdateProfileReq struct {
		Name            *string     `json:"name"`
		Initials        *string     `json:"initials" binding:"omitempty,max=8"`
		Role            *model.Role `json:"role"`
		ClientFolderIDs *[]string   `json:"clientFolderIds"`
	}
)

// ListProfiles godoc
//
//	@Summary	List profiles
//	@Tags		Profile
//	@Produce	json
//	@Security	Bearer
//	@Param		query	query		ListProfilesReq										false	"filter"
//	@Param		page	query		payload.ListReqQuery									false	"paging"
//	@Success	200		{object}	resputil.Response[payload.ListResp[model.Profile]]	"Success"
//	@Router		/api/v1/profiles [get]
func (mgr *ProfileMgr) ListProfiles(c *gin.Context) {
	var req ListProfilesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	listRows[model.Profile](c, mgr.db, func(db *gorm.DB) *gorm.DB {
		if req.Role != "" {
			db = db.Where("role = ?", req.Role)
		}
		return db
	})
}

// GetMyProfile godoc
//
//	@Summary	Get the caller's profile
//	@Tags		Profile
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[model.Profile]	"Success"
//	@Failure	404	{object}	resputil.Response[any]				"No profile for the token subject"
//	@Router		/api/v1/profiles/me [get]
func (mgr *ProfileMgr) GetMyProfile(c *gin.Context) {
	profile, err := currentProfile(c, mgr.profiles)
	if err != nil {
		resputil.DBError(c, err)
		return
	}
	resputil.Success(c, profile)
}

// UpdateProfile godoc
//
//	@Summary		Update a profile
//	@Description	Changes the role or the folders a client sees in the portal
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id		path		string								true	"profile id"
//	@Param			data	body		UpdateProfileReq					true	"changed fields"
//	@Success		200		{object}	resputil.Response[model.Profile]	"Success"
//	@Router			/api/v1/admin/profiles/{id} [put]
func (mgr *ProfileMgr) UpdateProfile(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	if req.Role != nil && !req.Role.Valid() {
		resputil.BadRequestError(c, fmt.Sprintf("unknown role %q", *req.Role))
		return
	}
	fields := map[string]any{}
	setIf(fields, "name", req.Name)
	setIf(fields, "initials", req.Initials)
	setIf(fields, "role", req.Role)
	if req.ClientFolderIDs != nil {
		fields["client_folder_ids"] = datatypes.JSONSlice[string](splitValues(*req.ClientFolderIDs))
	}
	updateRow[model.Profile](c, mgr.db, id, fields)
}
