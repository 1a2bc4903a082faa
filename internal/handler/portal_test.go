package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

var client = util.JWTMessage{UserID: "c1", Role: model.RoleClient}

func newPortalRouter(loader *fakeLoader, profiles map[string]model.Profile) *gin.Engine {
	mgr := &PortalMgr{name: "portal", loader: loader, profiles: &fakeProfiles{profiles: profiles}}
	return newTestRouter(client, func(g *gin.RouterGroup) {
		mgr.RegisterPortal(g.Group("/portal"))
	})
}

func clientProfile(folders ...string) map[string]model.Profile {
	p := model.Profile{Base: model.Base{ID: "c1"}, Name: "Acme Corp", Role: model.RoleClient}
	if folders != nil {
		p.ClientFolderIDs = datatypes.JSONSlice[string](folders)
	}
	return map[string]model.Profile{"c1": p}
}

func TestPortalScope(t *testing.T) {
	loader := &fakeLoader{collections: sampleCollections()}
	r := newPortalRouter(loader, clientProfile("f1", "f2"))

	w := serve(r, http.MethodGet, "/portal/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, loader.scopes, 1)
	assert.Equal(t, []string{"f1", "f2"}, loader.scopes[0].FolderIDs)
	assert.True(t, loader.scopes[0].ClientVisible)
	assert.Empty(t, loader.scopes[0].WorkspaceID)

	serve(r, http.MethodGet, "/portal/projects?folder_id=f2", nil)
	assert.Equal(t, []string{"f2"}, loader.scopes[1].FolderIDs)

	// A folder outside the profile narrows to nothing rather than widening.
	serve(r, http.MethodGet, "/portal/tasks?folder_id=f9", nil)
	require.NotNil(t, loader.scopes[2].FolderIDs)
	assert.Empty(t, loader.scopes[2].FolderIDs)
}

func TestPortalWithoutFolders(t *testing.T) {
	loader := &fakeLoader{collections: viewmodel.Collections{}}
	r := newPortalRouter(loader, clientProfile())

	w := serve(r, http.MethodGet, "/portal/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, loader.scopes[0].FolderIDs)
	assert.Empty(t, loader.scopes[0].FolderIDs)
	assert.Zero(t, decode[taskComposition](t, w).Data.Total)
}

func TestPortalViews(t *testing.T) {
	r := newPortalRouter(&fakeLoader{collections: sampleCollections()}, clientProfile("f1"))

	w := serve(r, http.MethodGet, "/portal/tasks?view=board&status=todo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[taskComposition](t, w)
	assert.Equal(t, viewmodel.ViewBoard, resp.Data.View)
	assert.Equal(t, 2, resp.Data.Total)

	for _, view := range []string{"calendar", "gantt", "timeline"} {
		w = serve(r, http.MethodGet, "/portal/tasks?view="+view, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, view)
	}
}

func TestPortalUnknownProfile(t *testing.T) {
	r := newPortalRouter(&fakeLoader{}, map[string]model.Profile{})
	w := serve(r, http.MethodGet, "/portal/projects", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
