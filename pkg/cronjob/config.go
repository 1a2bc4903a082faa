package cronjob

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/raids-lab/agencyos/pkg/reminder"
)

type CronJobManager struct {
	db              *gorm.DB
	reminderClients *reminder.Clients
	cron            *cron.Cron
	cronMutex       sync.RWMutex
}

func NewCronJobManager(db *gorm.DB, clients *reminder.Clients) *CronJobManager {
	return &CronJobManager{
		db:              db,
		reminderClients: clients,
		cron:            cron.New(cron.WithLocation(time.Local)),
	}
}
