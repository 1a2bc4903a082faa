package operations

import (
	"github.com/gin-gonic/gin"

	"github.com/raids-lab/agencyos/internal/handler"
	"github.com/raids-lab/agencyos/pkg/cronjob"
	"github.com/raids-lab/agencyos/pkg/reminder"
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	handler.Registers = append(handler.Registers, NewOperationsMgr)
}

type OperationsMgr struct {
	name           string
	cronJobManager *cronjob.CronJobManager
	reminders      *reminder.Clients
}

func NewOperationsMgr(conf *handler.RegisterConfig) handler.Manager {
	return &OperationsMgr{
		name:           "operations",
		cronJobManager: conf.CronJobManager,
		reminders: &reminder.Clients{
			DB:      conf.DB,
			Store:   conf.Store,
			Alerter: conf.Alerter,
			State:   conf.State,
		},
	}
}

func (mgr *OperationsMgr) GetName() string { return mgr.name }

func (mgr *OperationsMgr) RegisterPublic(_ *gin.RouterGroup) {
}

func (mgr *OperationsMgr) RegisterProtected(_ *gin.RouterGroup) {
}

func (mgr *OperationsMgr) RegisterAdmin(g *gin.RouterGroup) {
	g.GET("/cronjob", mgr.GetCronjobConfigs)
	g.PUT("/cronjob", mgr.UpdateCronjobConfig)
	g.POST("/cronjob/:name/trigger", mgr.TriggerCronjob)
	g.GET("/cronjob/names", mgr.GetCronjobNames)
	g.GET("/cronjob/record-range", mgr.GetCronjobRecordTimeRange)
	g.GET("/cronjob/records", mgr.GetCronjobRecords)
	g.DELETE("/cronjob/records", mgr.DeleteCronjobRecords)
	g.POST("/reminders/overdue", mgr.RemindOverdueTasks)
	g.DELETE("/timers/stale", mgr.SweepStaleTimers)
}
