package cronjob

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/dao/model"
)

const (
	MAX_GO_ROUTINE_NUM = 10
)

// RecordFilter selects cron job records. Empty fields match everything.
type RecordFilter struct {
	Names     []string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *model.CronJobRecordStatus
}

func (f RecordFilter) apply(tx *gorm.DB) *gorm.DB {
	if len(f.Names) > 0 {
		tx = tx.Where("name IN ?", f.Names)
	}
	if f.StartTime != nil {
		tx = tx.Where("execute_time >= ?", *f.StartTime)
	}
	if f.EndTime != nil {
		tx = tx.Where("execute_time <= ?", *f.EndTime)
	}
	if f.Status != nil {
		tx = tx.Where("status = ?", *f.Status)
	}
	return tx
}

// GetCronjobNames retrieves all cron job names from database
func (cm *CronJobManager) GetCronjobNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0)
	if err := cm.db.WithContext(ctx).Model(&model.CronJobConfig{}).Order("name").Pluck("name", &names).Error; err != nil {
		err := fmt.Errorf("CronJobManager.GetCronjobNames: %w", err)
		klog.Error(err)
		return nil, err
	}
	return names, nil
}

// GetCronjobRecordTimeRange returns the span of recorded executions, widened by a day on each side
func (cm *CronJobManager) GetCronjobRecordTimeRange(ctx context.Context) (startTime, endTime time.Time, err error) {
	var result struct {
		StartTime *time.Time
		EndTime   *time.Time
	}
	err = cm.db.
		WithContext(ctx).
		Model(&model.CronJobRecord{}).
		Select("min(execute_time) as start_time", "max(execute_time) as end_time").
		Scan(&result).
		Error
	if err != nil {
		err = fmt.Errorf("CronJobManager.GetCronjobRecordTimeRange: %w", err)
		klog.Error(err)
		return time.Time{}, time.Time{}, err
	}
	if result.StartTime == nil || result.EndTime == nil {
		now := time.Now()
		return now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), nil
	}
	return result.StartTime.AddDate(0, 0, -1), result.EndTime.AddDate(0, 0, 1), nil
}

// GetCronjobRecords retrieves cronjob records newest first with pagination
func (cm *CronJobManager) GetCronjobRecords(
	ctx context.Context,
	filter RecordFilter,
	page func(*gorm.DB) *gorm.DB,
) (records []*model.CronJobRecord, total int64, err error) {
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(MAX_GO_ROUTINE_NUM)

	g.Go(func() error {
		tx := filter.apply(cm.db.WithContext(groupCtx))
		if page != nil {
			tx = tx.Scopes(page)
		}
		if err := tx.Order("execute_time DESC").Find(&records).Error; err != nil {
			return fmt.Errorf("CronJobManager.GetCronjobRecords: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		tx := filter.apply(cm.db.WithContext(groupCtx))
		if err := tx.Model(&model.CronJobRecord{}).Count(&total).Error; err != nil {
			return fmt.Errorf("CronJobManager.GetCronjobRecords: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		klog.Error(err)
		return nil, 0, err
	}

	return records, total, nil
}

// DeleteCronjobRecords deletes cronjob records by id or by execution time
func (cm *CronJobManager) DeleteCronjobRecords(
	ctx context.Context,
	ids []uint,
	startTime *time.Time,
	endTime *time.Time,
) (int64, error) {
	tx := cm.db.WithContext(ctx)
	if len(ids) == 0 && startTime == nil && endTime == nil {
		return 0, nil
	}
	if len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	}
	if startTime != nil {
		tx = tx.Where("execute_time >= ?", *startTime)
	}
	if endTime != nil {
		tx = tx.Where("execute_time <= ?", *endTime)
	}

	res := tx.Delete(&model.CronJobRecord{})
	if err := res.Error; err != nil {
		err := fmt.Errorf("CronJobManager.DeleteCronjobRecords: %w", err)
		klog.Error(err)
		return 0, err
	}

	return res.RowsAffected, nil
}
