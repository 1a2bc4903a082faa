package alert

import (
	"context"
	"time"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// AlertInterface sends the notifications raised by scheduled jobs:
//  1. the daily digest of a member's overdue tasks
//  2. a notice that a forgotten timer was stopped
type AlertInterface interface {
	OverdueTasksAlert(ctx context.Context, receiver *model.Profile, tasks []viewmodel.TaskRecord, today time.Time) error
	StaleTimerAlert(ctx context.Context, receiver *model.Profile, entry *model.TimeEntry) error
}

// alertHandlerInterface delivers one message. SMTP and webhook handlers implement it.
type alertHandlerInterface interface {
	SendMessageTo(ctx context.Context, receiver *model.Profile, subject, body string) error
}
