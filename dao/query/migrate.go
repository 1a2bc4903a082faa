package query

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/dao/model"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "202410180001-initial",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&model.Space{},
					&model.Folder{},
					&model.Project{},
					&model.Task{},
					&model.TimeEntry{},
					&model.Profile{},
				)
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("time_entries", "tasks", "projects", "folders", "spaces", "profiles")
			},
		},
		{
			ID: "202410180002-saved-views",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.SavedView{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("saved_views")
			},
		},
		{
			ID: "202410180003-cron",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&model.CronJobConfig{}, &model.CronJobRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("cron_job_records", "cron_job_configs")
			},
		},
	}
}

// Migrate applies every pending migration.
func Migrate(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).Migrate()
}

// RollbackLast undoes the most recent migration.
func RollbackLast(db *gorm.DB) error {
	return gormigrate.New(db, gormigrate.DefaultOptions, migrations()).RollbackLast()
}
