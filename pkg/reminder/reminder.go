package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/alert"
	"github.com/raids-lab/agencyos/pkg/appstate"
)

const (
	REMIND_OVERDUE_TASKS = "overdue-task-digest"
	SWEEP_STALE_TIMERS   = "stale-timer-sweep"
)

// JobNames lists the jobs GetReminderFunc knows.
func JobNames() []string {
	return []string{REMIND_OVERDUE_TASKS, SWEEP_STALE_TIMERS}
}

// DefaultConfig is the job config used when a job is created without one.
func DefaultConfig(jobName string) datatypes.JSON {
	switch jobName {
	case REMIND_OVERDUE_TASKS:
		return datatypes.JSON(`{"lookbackDays": 0}`)
	case SWEEP_STALE_TIMERS:
		return datatypes.JSON(`{"maxHours": 12}`)
	default:
		return datatypes.JSON(`{}`)
	}
}

// Clients holds what the reminder jobs read and notify through.
type Clients struct {
	DB      *gorm.DB
	Store   *query.Store
	Alerter alert.AlertInterface
	State   *appstate.Store
	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *Clients) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

type ReminderFunc func(ctx context.Context) (any, error)

// GetReminderFunc decodes jobConfig for the named job and binds it to clients.
func GetReminderFunc(jobName string, clients *Clients, jobConfig datatypes.JSON) (ReminderFunc, error) {
	if len(jobConfig) == 0 {
		jobConfig = DefaultConfig(jobName)
	}
	switch jobName {
	case REMIND_OVERDUE_TASKS:
		req := &RemindOverdueTasksRequest{}
		if err := json.Unmarshal(jobConfig, req); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) {
			return RemindOverdueTasks(ctx, clients, req)
		}, nil

	case SWEEP_STALE_TIMERS:
		req := &SweepStaleTimersRequest{}
		if err := json.Unmarshal(jobConfig, req); err != nil {
			return nil, err
		}
		return func(ctx context.Context) (any, error) {
			return SweepStaleTimers(ctx, clients, req)
		}, nil

	default:
		return nil, fmt.Errorf("unsupported reminder job name: %s", jobName)
	}
}

// GetWrapReminderFunc combines GetReminderFunc and WrapReminderFunc.
func GetWrapReminderFunc(jobName string, clients *Clients, jobConfig datatypes.JSON) (func(), error) {
	reminderFunc, err := GetReminderFunc(jobName, clients, jobConfig)
	if err != nil {
		return nil, err
	}
	return WrapReminderFunc(jobName, clients.DB, reminderFunc), nil
}

// WrapReminderFunc runs the job and stores a CronJobRecord with its result.
func WrapReminderFunc(jobName string, db *gorm.DB, reminderFunc ReminderFunc) func() {
	return func() {
		ctx := context.Background()
		jobResult, err := reminderFunc(ctx)
		rec := &model.CronJobRecord{
			Name:        jobName,
			ExecuteTime: time.Now(),
			Status:      model.CronJobRecordStatusSuccess,
		}
		if err != nil {
			rec.Status = model.CronJobRecordStatusFailed
			rec.Message = err.Error()
			klog.Errorf("ReminderFunc %s failed: %v", jobName, err)
		}

		if jobResult != nil {
			if data, err := json.Marshal(jobResult); err != nil {
				klog.Errorf("WrapReminderFunc failed to marshal job result: %v", err)
			} else {
				rec.JobData = datatypes.JSON(data)
			}
		}

		if err := db.Model(rec).Create(rec).Error; err != nil {
			klog.Errorf("WrapReminderFunc failed to create record: %v", err)
		}
	}
}
