package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/resputil"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/logutils"
	"github.com/raids-lab/agencyos/pkg/utils"
)

// MetricsSource provides the counts exported as gauges.
type MetricsSource interface {
	CountTasksByStatus(ctx context.Context) ([]query.StatusCount, error)
	CountOverdueTasks(ctx context.Context, today time.Time) (int64, error)
}

type MetricsMgr struct {
	name   string
	source MetricsSource
	state  *appstate.Store
	now    func() time.Time
}

func NewMetricsMgr(conf *RegisterConfig) Manager {
	mgr := &MetricsMgr{
		name:  "metrics",
		state: conf.State,
		now:   utils.GetLocalTime,
	}
	if conf.Store != nil {
		mgr.source = conf.Store
	}
	return mgr
}

func (mgr *MetricsMgr) GetName() string { return mgr.name }

func (mgr *MetricsMgr) RegisterPublic(metrics *gin.RouterGroup) {
	metrics.GET("", mgr.GetMetrics)
}

func (mgr *MetricsMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MetricsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// Metrics live on their own registry so that only agency gauges are exported.
var registry *prometheus.Registry

var promHTTPHandler http.Handler

var tasksByStatusGauge = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "agencyos",
		Name:      "tasks",
		Help:      "Number of tasks per status",
	},
	[]string{"status"},
)

var overdueTasksGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "agencyos",
		Name:      "overdue_tasks",
		Help:      "Open tasks whose due date has passed",
	},
)

var runningTimersGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "agencyos",
		Name:      "running_timers",
		Help:      "Users with a running timer",
	},
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMetricsMgr)
	registry = prometheus.NewRegistry()
	promHTTPHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	registry.MustRegister(tasksByStatusGauge)
	registry.MustRegister(overdueTasksGauge)
	registry.MustRegister(runningTimersGauge)
}

// MetricsHandler serves the agency gauges, refreshed on every scrape.
func (mgr *MetricsMgr) MetricsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := mgr.refresh(r.Context()); err != nil {
			logutils.Log.Errorf("refresh metrics: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		promHTTPHandler.ServeHTTP(w, r)
	})
}

// GetMetrics godoc
//
//	@Summary		Prometheus metrics
//	@Description	Task counts per status, overdue tasks and running timers in the Prometheus text format
//	@Tags			Metrics
//	@Produce		plain
//	@Success		200	{string}	string					"Prometheus exposition"
//	@Failure		500	{object}	resputil.Response[any]	"Other errors"
//	@Router			/api/v1/metrics [get]
func (mgr *MetricsMgr) GetMetrics(c *gin.Context) {
	if err := mgr.refresh(c); err != nil {
		resputil.Error(c, err.Error(), resputil.ServiceError)
		return
	}
	promHTTPHandler.ServeHTTP(c.Writer, c.Request)
}

func (mgr *MetricsMgr) refresh(ctx context.Context) error {
	if mgr.source != nil {
		counts, err := mgr.source.CountTasksByStatus(ctx)
		if err != nil {
			return err
		}
		setTaskCounts(counts)
		overdue, err := mgr.source.CountOverdueTasks(ctx, mgr.now())
		if err != nil {
			return err
		}
		overdueTasksGauge.Set(float64(overdue))
	}
	if mgr.state != nil {
		runningTimersGauge.Set(float64(mgr.state.RunningTimers()))
	}
	return nil
}

// setTaskCounts reports every known status, zero when no task has it.
func setTaskCounts(counts []query.StatusCount) {
	tasksByStatusGauge.Reset()
	for _, s := range model.AllTaskStatuses() {
		tasksByStatusGauge.WithLabelValues(string(s)).Set(0)
	}
	for _, c := range counts {
		tasksByStatusGauge.WithLabelValues(string(c.Status)).Set(float64(c.Count))
	}
}
