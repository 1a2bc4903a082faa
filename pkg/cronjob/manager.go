package cronjob

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/reminder"
)

var ErrUnknownCronJob = errors.New("unknown cron job")

// AddCronJob adds a cron job to the scheduler based on job type
func (cm *CronJobManager) AddCronJob(
	_ context.Context,
	jobName string,
	jobSpec string,
	jobType model.CronJobType,
	jobConfig datatypes.JSON,
) (cron.EntryID, error) {
	f, err := cm.newCronJobFunc(jobName, jobType, jobConfig)
	if err != nil {
		klog.Error(err)
		return -1, err
	}

	entryID, err := cm.cron.AddFunc(jobSpec, f)
	if err != nil {
		klog.Error(err)
		return -1, err
	}
	return entryID, nil
}

// newCronJobFunc creates the appropriate cron job function based on job type
func (cm *CronJobManager) newCronJobFunc(jobName string, jobType model.CronJobType, jobConfig datatypes.JSON) (cron.FuncJob, error) {
	switch jobType {
	case model.CronJobTypeReminderFunc:
		return reminder.GetWrapReminderFunc(jobName, cm.reminderClients, jobConfig)
	default:
		return nil, fmt.Errorf("unsupported cron job type: %s", jobType)
	}
}

// UpdateJobConfig updates the configuration of an existing cron job
func (cm *CronJobManager) UpdateJobConfig(
	ctx context.Context,
	name string,
	jobType *model.CronJobType,
	spec *string,
	suspend *bool,
	config *string,
) error {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()

	return cm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cur, err := cm.getCurrentJobConfigFromDB(tx, name)
		if err != nil {
			return err
		}

		update := cm.prepareUpdateConfig(cur, jobType, spec, suspend, config)

		if cm.shouldSuspendJob(cur.GetSuspend(), update.GetSuspend()) {
			return cm.updateSuspendedJobConfig(tx, name, cur, update)
		}
		if !update.GetSuspend() {
			return cm.updateActiveJobConfig(ctx, tx, name, cur, update)
		}
		return tx.Model(cur).Where("name = ?", name).Updates(update).Error
	})
}

// getCurrentJobConfigFromDB retrieves current job configuration from database with row-level lock
func (cm *CronJobManager) getCurrentJobConfigFromDB(tx *gorm.DB, name string) (*model.CronJobConfig, error) {
	cur := &model.CronJobConfig{}
	txErr := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(cur).Error
	if errors.Is(txErr, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCronJob, name)
	}
	if txErr != nil {
		err := fmt.Errorf("CronJobManager.getCurrentJobConfigFromDB failed: %w", txErr)
		klog.Error(err)
		return nil, err
	}
	return cur, nil
}

// prepareUpdateConfig creates update configuration
func (cm *CronJobManager) prepareUpdateConfig(
	cur *model.CronJobConfig,
	jobType *model.CronJobType,
	spec *string,
	suspend *bool,
	config *string,
) *model.CronJobConfig {
	update := &model.CronJobConfig{
		Name:    cur.Name,
		Type:    cur.Type,
		Spec:    cur.Spec,
		Suspend: cur.Suspend,
		Config:  cur.Config,
		EntryID: cur.EntryID,
	}
	if jobType != nil {
		update.Type = *jobType
	}
	if spec != nil && *spec != "" {
		update.Spec = *spec
	}
	if suspend != nil {
		update.Suspend = suspend
	}
	if config != nil && *config != "" {
		update.Config = datatypes.JSON(*config)
	}
	return update
}

func (cm *CronJobManager) shouldSuspendJob(wasSuspended, shouldSuspend bool) bool {
	return !wasSuspended && shouldSuspend
}

// updateSuspendedJobConfig removes a running job from the scheduler
func (cm *CronJobManager) updateSuspendedJobConfig(
	tx *gorm.DB,
	name string,
	cur *model.CronJobConfig,
	update *model.CronJobConfig,
) error {
	curEntryID := cur.EntryID
	if err := tx.Model(cur).Where("name = ?", name).
		Select("type", "spec", "suspend", "config", "entry_id").
		Updates(&model.CronJobConfig{
			Type: update.Type, Spec: update.Spec, Suspend: update.Suspend, Config: update.Config, EntryID: 0,
		}).Error; err != nil {
		err := fmt.Errorf("CronJobManager.updateSuspendedJobConfig failed to update cron job config for job %s: %w", name, err)
		klog.Error(err)
		return err
	}
	cm.cron.Remove(cron.EntryID(curEntryID))
	return nil
}

// updateActiveJobConfig (re)schedules a job that is not suspended
func (cm *CronJobManager) updateActiveJobConfig(
	ctx context.Context,
	tx *gorm.DB,
	name string,
	cur *model.CronJobConfig,
	update *model.CronJobConfig,
) error {
	wasRunning := !cur.GetSuspend() && cur.EntryID > 0
	if wasRunning && !cm.jobNeedsUpdate(cur, update) {
		return tx.Model(cur).Where("name = ?", name).Updates(update).Error
	}
	entryID, err := cm.AddCronJob(ctx, name, update.Spec, update.Type, update.Config)
	if err != nil {
		err := fmt.Errorf("addCronJob failed: %w", err)
		klog.Error(err)
		return err
	}
	update.EntryID = int(entryID)
	if err := tx.Model(cur).Where("name = ?", name).Updates(update).Error; err != nil {
		err := fmt.Errorf("DB failed to update cron job config for job %s: %w", name, err)
		cm.cron.Remove(entryID)
		klog.Error(err)
		return err
	}
	if wasRunning {
		cm.cron.Remove(cron.EntryID(cur.EntryID))
	}
	return nil
}

// jobNeedsUpdate checks if job configuration has changed
func (cm *CronJobManager) jobNeedsUpdate(
	cur *model.CronJobConfig,
	update *model.CronJobConfig,
) bool {
	if cur.Type != update.Type {
		return true
	}
	if cur.Spec != update.Spec {
		return true
	}
	if update.Config != nil && !bytes.Equal(cur.Config, update.Config) {
		return true
	}
	return false
}

// SeedCronJobs creates the configured jobs that do not exist yet. Existing rows are left alone.
func (cm *CronJobManager) SeedCronJobs(ctx context.Context, seeds []config.CronJobSeed) error {
	for _, seed := range seeds {
		suspend := seed.Suspend
		conf := &model.CronJobConfig{
			Name:    seed.Name,
			Type:    model.CronJobTypeReminderFunc,
			Spec:    seed.Spec,
			Suspend: &suspend,
			Config:  reminder.DefaultConfig(seed.Name),
		}
		err := cm.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(conf).Error
		if err != nil {
			return fmt.Errorf("seed cron job %s: %w", seed.Name, err)
		}
	}
	return nil
}

// SyncCronJob synchronizes cron jobs from database and starts the scheduler
func (cm *CronJobManager) SyncCronJob(ctx context.Context) {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()
	cm.cron.Start()
	err := cm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var configs []*model.CronJobConfig
		if err := tx.Where("suspend = ?", false).Find(&configs).Error; err != nil {
			return fmt.Errorf("CronJobManager.SyncCronJob: failed to load cron job configs: %w", err)
		}
		klog.Infof("CronJobManager.SyncCronJob: loaded %d non-suspended cron jobs from database", len(configs))

		for _, conf := range configs {
			entryID, err := cm.AddCronJob(ctx, conf.Name, conf.Spec, conf.Type, conf.Config)
			if err != nil {
				klog.Errorf("CronJobManager.AddCronJob: failed to add cron job %s with spec %s: %v", conf.Name, conf.Spec, err)
				continue
			}
			if int(entryID) != conf.EntryID {
				err := tx.
					Model(&model.CronJobConfig{}).
					Where("name = ?", conf.Name).
					Update("entry_id", int(entryID)).
					Error
				if err != nil {
					klog.Errorf("DB failed to update entry_id for job %s: %v", conf.Name, err)
				}
			}
		}
		return nil
	})

	if err != nil {
		klog.Error(err)
	}
	klog.Info("CronJobManager.SyncCronJob: cron scheduler started")
}

// TriggerCronJob runs a job once, outside its schedule, and waits for it to finish.
func (cm *CronJobManager) TriggerCronJob(ctx context.Context, name string) error {
	conf := &model.CronJobConfig{}
	err := cm.db.WithContext(ctx).Where("name = ?", name).First(conf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrUnknownCronJob, name)
	}
	if err != nil {
		return err
	}
	f, err := cm.newCronJobFunc(conf.Name, conf.Type, conf.Config)
	if err != nil {
		return err
	}
	f.Run()
	return nil
}

// GetAllCronJobs retrieves all cron job configurations from database
func (cm *CronJobManager) GetAllCronJobs(ctx context.Context) ([]*model.CronJobConfig, error) {
	var configs []*model.CronJobConfig
	if err := cm.db.WithContext(ctx).Order("name").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

// StopCron stops the cron scheduler
func (cm *CronJobManager) StopCron() {
	cm.cronMutex.Lock()
	defer cm.cronMutex.Unlock()
	<-cm.cron.Stop().Done()
}
