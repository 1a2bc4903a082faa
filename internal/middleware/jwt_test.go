package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/internal/util"
)

func newRouter(tm *util.TokenManager, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthWith(tm)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, util.GetToken(c).UserID)
	})
	r.GET("/", handlers...)
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sign(t *testing.T, tm *util.TokenManager, role model.Role, ttl time.Duration) string {
	t.Helper()
	token, err := tm.CreateToken(&util.JWTMessage{UserID: "u1", Role: role}, ttl)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestAuthWith(t *testing.T) {
	tm := util.NewTokenManager("secret", "")
	r := newRouter(tm)

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer nope").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, sign(t, tm, model.RoleMember, -time.Minute)).Code)

	w := do(r, sign(t, tm, model.RoleMember, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", w.Body.String())
}

func TestRoleGuards(t *testing.T) {
	tm := util.NewTokenManager("secret", "")

	admin := newRouter(tm, AuthAdmin())
	assert.Equal(t, http.StatusForbidden, do(admin, sign(t, tm, model.RoleMember, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(admin, sign(t, tm, model.RoleAdmin, time.Hour)).Code)

	member := newRouter(tm, AuthMember())
	assert.Equal(t, http.StatusForbidden, do(member, sign(t, tm, model.RoleClient, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(member, sign(t, tm, model.RoleAdmin, time.Hour)).Code)

	client := newRouter(tm, AuthClient())
	assert.Equal(t, http.StatusForbidden, do(client, sign(t, tm, model.RoleMember, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(client, sign(t, tm, model.RoleClient, time.Hour)).Code)
}
