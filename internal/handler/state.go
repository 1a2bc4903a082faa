package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/appstate"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewStateMgr)
}

type StateMgr struct {
	name  string
	state *appstate.Store
}

func NewStateMgr(conf *RegisterConfig) Manager {
	return &StateMgr{
		name:  "state",
		state: conf.State,
	}
}

func (mgr *StateMgr) GetName() string { return mgr.name }

func (mgr *StateMgr) RegisterPublic(_ *gin.RouterGroup) {}

func (mgr *StateMgr) RegisterProtected(g *gin.RouterGroup) {
	g.GET("", mgr.GetState)
	g.PUT("", mgr.UpdateState)
}

func (mgr *StateMgr) RegisterAdmin(_ *gin.RouterGroup) {}

type UpdateStateReq struct {
	CurrentView *string `json:"currentView"`
	// ActiveSpaceID selects a space. An empty string clears the selection.
	ActiveSpaceID *string `json:"activeSpaceId"`
}

// GetState godoc
//
//	@Summary	Get the caller's session state
//	@Tags		State
//	@Produce	json
//	@Security	Bearer
//	@Success	200	{object}	resputil.Response[appstate.Session]	"Current view, active space, timer and clock"
//	@Router		/api/v1/state [get]
func (mgr *StateMgr) GetState(c *gin.Context) {
	resputil.Success(c, mgr.state.Get(util.GetToken(c).UserID))
}

// UpdateState godoc
//
//	@Summary	Change the current view or active space
//	@Tags		State
//	@Accept		json
//	@Produce	json
//	@Security	Bearer
//	@Param		data	body		UpdateStateReq						true	"changed fields"
//	@Success	200		{object}	resputil.Response[appstate.Session]	"Success"
//	@Failure	400		{object}	resputil.Response[any]				"Unknown view"
//	@Router		/api/v1/state [put]
func (mgr *StateMgr) UpdateState(c *gin.Context) {
	var req UpdateStateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resputil.BadRequestError(c, err.Error())
		return
	}
	userID := util.GetToken(c).UserID
	if req.CurrentView != nil {
		if _, err := mgr.state.SetView(userID, *req.CurrentView); err != nil {
			resputil.BadRequestError(c, err.Error())
			return
		}
	}
	if req.ActiveSpaceID != nil {
		var spaceID *string
		if *req.ActiveSpaceID != "" {
			spaceID = req.ActiveSpaceID
		}
		mgr.state.SetActiveSpace(userID, spaceID)
	}
	resputil.Success(c, mgr.state.Get(userID))
}
