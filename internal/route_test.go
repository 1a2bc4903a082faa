package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/handler"
	"github.com/raids-lab/agencyos/internal/middleware"
	"github.com/raids-lab/agencyos/internal/util"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

func newTestEngine(t *testing.T) (*gin.Engine, *util.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens := util.NewTokenManager("route-test-secret", "agencyos")
	config := &handler.RegisterConfig{State: appstate.New(viewmodel.ViewList)}
	return RegisterWith(config, middleware.AuthWith(tokens)), tokens
}

func request(t *testing.T, r http.Handler, tokens *util.TokenManager, role model.Role, target string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	if role != "" {
		token, err := tokens.CreateToken(&util.JWTMessage{UserID: "u-" + string(role), Role: role, WorkspaceID: "w1"}, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRouteAccess(t *testing.T) {
	r, tokens := newTestEngine(t)

	cases := []struct {
		name   string
		role   model.Role
		target string
		want   int
	}{
		{"health check is public", "", "/healthz", http.StatusOK},
		{"metrics are public", "", "/api/v1/metrics", http.StatusOK},
		{"protected routes need a token", "", "/api/v1/state", http.StatusUnauthorized},
		{"members reach protected routes", model.RoleMember, "/api/v1/state", http.StatusOK},
		{"admins reach protected routes", model.RoleAdmin, "/api/v1/state", http.StatusOK},
		{"clients stay out of the workspace", model.RoleClient, "/api/v1/state", http.StatusForbidden},
		{"members stay out of admin routes", model.RoleMember, "/api/v1/admin/operations/cronjob", http.StatusForbidden},
		{"members stay out of the portal", model.RoleMember, "/api/v1/portal/tasks", http.StatusForbidden},
		{"admin routes need a token", "", "/api/v1/admin/time-entries", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, request(t, r, tokens, tc.role, tc.target))
		})
	}
}

func TestRouteRejectsForeignTokens(t *testing.T) {
	r, _ := newTestEngine(t)
	other := util.NewTokenManager("another-secret", "agencyos")
	assert.Equal(t, http.StatusUnauthorized, request(t, r, other, model.RoleAdmin, "/api/v1/state"))
}

func TestRouteRegistersManagers(t *testing.T) {
	names := map[string]bool{}
	for _, mgr := range registerManagers(&handler.RegisterConfig{}) {
		names[mgr.GetName()] = true
	}
	for _, want := range []string{
		"spaces", "folders", "projects", "tasks", "views", "saved-views",
		"timer", "clock", "time-entries", "state", "reports", "profiles",
		"portal", "metrics", "operations",
	} {
		assert.True(t, names[want], want)
	}
}
