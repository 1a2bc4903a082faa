package alert

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/constants"
	"github.com/raids-lab/agencyos/pkg/logutils"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

type alertMgr struct {
	handlers []alertHandlerInterface
}

var (
	once    sync.Once
	alerter *alertMgr
)

func GetAlertMgr() AlertInterface {
	once.Do(func() {
		alerter = initAlertMgr()
	})
	return alerter
}

func initAlertMgr() *alertMgr {
	cfg := config.GetConfig()
	mgr := &alertMgr{}
	if cfg.SMTP.Enable {
		mgr.handlers = append(mgr.handlers, newSMTPAlerter(cfg))
	}
	if cfg.Webhook.Enable {
		mgr.handlers = append(mgr.handlers, newWebhookAlerter(cfg.Webhook.URL))
	}
	if len(mgr.handlers) == 0 {
		logutils.Log.Warn("no alert handler enabled, alerts are only logged")
		mgr.handlers = append(mgr.handlers, logAlerter{})
	}
	return mgr
}

// send delivers through every handler and joins their errors.
func (a *alertMgr) send(ctx context.Context, receiver *model.Profile, subject, body string) error {
	var errs []error
	for _, h := range a.handlers {
		if err := h.SendMessageTo(ctx, receiver, subject, body); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *alertMgr) OverdueTasksAlert(ctx context.Context, receiver *model.Profile, tasks []viewmodel.TaskRecord, today time.Time) error {
	if len(tasks) == 0 {
		return nil
	}
	subject := fmt.Sprintf("%d overdue task(s)", len(tasks))
	return a.send(ctx, receiver, subject, overdueBody(receiver, tasks, today))
}

func overdueBody(receiver *model.Profile, tasks []viewmodel.TaskRecord, today time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, these tasks were due before %s:\n\n", receiver.Name, today.Format(constants.DateLayout))
	for i := range tasks {
		t := &tasks[i]
		project := "no project"
		if t.Project != nil {
			project = t.Project.Name
		}
		due := ""
		if d := t.RecordDue(); d != nil {
			due = d.Format(constants.DateLayout)
		}
		fmt.Fprintf(&b, "- [%s] %s (%s), due %s, %s\n", t.Priority, t.Title, project, due, t.Status)
	}
	return b.String()
}

func (a *alertMgr) StaleTimerAlert(ctx context.Context, receiver *model.Profile, entry *model.TimeEntry) error {
	subject := "Your timer was stopped"
	started := entry.StartedAt.Format("2006-01-02 15:04")
	body := fmt.Sprintf("Hi %s, the timer you started at %s ran for %.1f hours and has been stopped. "+
		"Please correct the entry if the time is wrong.", receiver.Name, started, entry.Hours)
	return a.send(ctx, receiver, subject, body)
}

type logAlerter struct{}

func (logAlerter) SendMessageTo(_ context.Context, receiver *model.Profile, subject, _ string) error {
	logutils.Log.Infof("alert for %s: %s", receiver.Name, subject)
	return nil
}
