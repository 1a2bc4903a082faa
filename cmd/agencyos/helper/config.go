package helper

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/internal/handler"
	"github.com/raids-lab/agencyos/pkg/alert"
	"github.com/raids-lab/agencyos/pkg/appstate"
	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/cronjob"
	"github.com/raids-lab/agencyos/pkg/reminder"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// ConfigInitializer builds the server dependencies from the backend config.
type ConfigInitializer struct {
	backendConfig *config.Config
}

func NewConfigInitializer() *ConfigInitializer {
	return &ConfigInitializer{
		backendConfig: config.GetConfig(),
	}
}

func (ci *ConfigInitializer) GetBackendConfig() *config.Config {
	return ci.backendConfig
}

// LoadDebugEnvironment reads .debug.env in gin debug mode and overrides the listen addresses.
func (ci *ConfigInitializer) LoadDebugEnvironment() error {
	if gin.Mode() != gin.DebugMode {
		return nil
	}

	err := godotenv.Load(".debug.env")
	if err != nil {
		return err
	}

	be := os.Getenv("AGENCYOS_BE_PORT")
	if be == "" {
		return fmt.Errorf("AGENCYOS_BE_PORT is not set")
	}
	ci.backendConfig.ServerAddr = ":" + be
	if ms := os.Getenv("AGENCYOS_MS_PORT"); ms != "" {
		ci.backendConfig.MetricsAddr = ":" + ms
	}
	return nil
}

// InitializeRegisterConfig opens the database, migrates it and restores running timers.
func (ci *ConfigInitializer) InitializeRegisterConfig(ctx context.Context) (*handler.RegisterConfig, error) {
	db := query.GetDB()
	if err := query.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	store := query.NewStore(db)

	defaultView, err := viewmodel.ParseViewShape(ci.backendConfig.Views.DefaultView)
	if err != nil {
		return nil, fmt.Errorf("views.defaultView: %w", err)
	}
	state := appstate.New(defaultView)
	open, err := store.OpenTimeEntries(ctx, "", "")
	if err != nil {
		return nil, fmt.Errorf("load running timers: %w", err)
	}
	state.Restore(open)
	klog.Infof("restored %d open time entries", len(open))

	registerConfig := &handler.RegisterConfig{
		DB:      db,
		Store:   store,
		State:   state,
		Alerter: alert.GetAlertMgr(),
		Config:  ci.backendConfig,
	}
	registerConfig.CronJobManager = cronjob.NewCronJobManager(db, &reminder.Clients{
		DB:      db,
		Store:   store,
		Alerter: registerConfig.Alerter,
		State:   state,
	})
	return registerConfig, nil
}

// StartCronJobs seeds the configured jobs and starts the scheduler.
func (ci *ConfigInitializer) StartCronJobs(ctx context.Context, registerConfig *handler.RegisterConfig) {
	if err := registerConfig.CronJobManager.SeedCronJobs(ctx, ci.backendConfig.CronJobs); err != nil {
		klog.Errorf("seed cron jobs: %v", err)
	}
	registerConfig.CronJobManager.SyncCronJob(ctx)
}
