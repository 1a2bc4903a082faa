package resputil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response[any] {
	t.Helper()
	var resp Response[any]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	w := record(func(c *gin.Context) { Success(c, map[string]int{"n": 1}) })
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, OK, resp.Code)
	assert.Equal(t, map[string]any{"n": float64(1)}, resp.Data)
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
	}{
		{InvalidRequest, http.StatusBadRequest},
		{TokenInvalid, http.StatusUnauthorized},
		{UserNotAllowed, http.StatusForbidden},
		{NotFound, http.StatusNotFound},
		{ServiceError, http.StatusInternalServerError},
		{NotSpecified, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		w := record(func(c *gin.Context) { Error(c, "boom", tc.code) })
		assert.Equal(t, tc.status, w.Code, "code %d", tc.code)
		resp := decode(t, w)
		assert.Equal(t, tc.code, resp.Code)
		assert.Equal(t, "boom", resp.Msg)
	}
}

func TestDBError(t *testing.T) {
	w := record(func(c *gin.Context) { DBError(c, fmt.Errorf("get task: %w", gorm.ErrRecordNotFound)) })
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = record(func(c *gin.Context) { DBError(c, fmt.Errorf("connection refused")) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ServiceError, decode(t, w).Code)
}
