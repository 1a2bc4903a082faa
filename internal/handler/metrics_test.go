package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

type fakeMetrics struct {
	counts  []query.StatusCount
	overdue int64
	err     error
	today   time.Time
}

func (f *fakeMetrics) CountTasksByStatus(context.Context) ([]query.StatusCount, error) {
	return f.counts, f.err
}

func (f *fakeMetrics) CountOverdueTasks(_ context.Context, today time.Time) (int64, error) {
	f.today = today
	return f.overdue, nil
}

func TestMetrics(t *testing.T) {
	state := appstate.New(viewmodel.ViewList)
	state.StartTimer("u1", appstate.Timer{EntryID: "e1"})
	source := &fakeMetrics{
		counts:  []query.StatusCount{{Status: model.TaskTodo, Count: 3}, {Status: model.TaskBlocked, Count: 1}},
		overdue: 2,
	}
	now := time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC)
	mgr := &MetricsMgr{name: "metrics", source: source, state: state, now: func() time.Time { return now }}
	r := newTestRouter(member, func(g *gin.RouterGroup) {
		mgr.RegisterPublic(g.Group("/metrics"))
	})

	w := serve(r, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `agencyos_tasks{status="todo"} 3`)
	assert.Contains(t, body, `agencyos_tasks{status="blocked"} 1`)
	assert.Contains(t, body, `agencyos_tasks{status="complete"} 0`)
	assert.Contains(t, body, "agencyos_overdue_tasks 2")
	assert.Contains(t, body, "agencyos_running_timers 1")
	assert.NotContains(t, body, "go_goroutines")
	assert.Equal(t, now, source.today)

	rec := httptest.NewRecorder()
	mgr.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "agencyos_overdue_tasks 2")
}

func TestMetricsSourceError(t *testing.T) {
	mgr := &MetricsMgr{name: "metrics", source: &fakeMetrics{err: errors.New("db down")}, now: time.Now}
	r := newTestRouter(member, func(g *gin.RouterGroup) {
		mgr.RegisterPublic(g.Group("/metrics"))
	})
	w := serve(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
