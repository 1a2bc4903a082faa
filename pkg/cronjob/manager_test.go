package cronjob

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/datatypes"
	"k8s.io/utils/ptr"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/reminder"
)

func TestCronJob(t *testing.T) {
	manager := NewCronJobManager(nil, &reminder.Clients{})

	Convey("newCronJobFunc", t, func() {
		jobFunc, err := manager.newCronJobFunc(reminder.REMIND_OVERDUE_TASKS, model.CronJobTypeReminderFunc,
			datatypes.JSON(`{"lookbackDays": 14}`))
		So(err, ShouldBeNil)
		So(jobFunc, ShouldNotBeNil)

		jobFunc, err = manager.newCronJobFunc(reminder.SWEEP_STALE_TIMERS, model.CronJobTypeReminderFunc,
			datatypes.JSON(`{"maxHours": 8}`))
		So(err, ShouldBeNil)
		So(jobFunc, ShouldNotBeNil)

		jobFunc, err = manager.newCronJobFunc(reminder.SWEEP_STALE_TIMERS, model.CronJobTypeReminderFunc, nil)
		So(err, ShouldBeNil)
		So(jobFunc, ShouldNotBeNil)

		jobFunc, err = manager.newCronJobFunc("unknown", model.CronJobTypeReminderFunc, datatypes.JSON(`{}`))
		So(err, ShouldNotBeNil)
		So(jobFunc, ShouldBeNil)

		jobFunc, err = manager.newCronJobFunc(reminder.SWEEP_STALE_TIMERS, "cleaner_function", datatypes.JSON(`{}`))
		So(err, ShouldNotBeNil)
		So(jobFunc, ShouldBeNil)
	})

	Convey("AddCronJob rejects a bad spec", t, func() {
		_, err := manager.AddCronJob(t.Context(), reminder.SWEEP_STALE_TIMERS, "every tuesday",
			model.CronJobTypeReminderFunc, nil)
		So(err, ShouldNotBeNil)

		id, err := manager.AddCronJob(t.Context(), reminder.SWEEP_STALE_TIMERS, "*/30 * * * *",
			model.CronJobTypeReminderFunc, nil)
		So(err, ShouldBeNil)
		So(id, ShouldBeGreaterThan, 0)
		manager.cron.Remove(id)
	})

	Convey("prepareUpdateConfig", t, func() {
		cur := &model.CronJobConfig{
			Name:    "test",
			Type:    model.CronJobTypeReminderFunc,
			Spec:    "0 0 * * *",
			Suspend: ptr.To(false),
			Config:  datatypes.JSON(`{"test": "test"}`),
			EntryID: 3,
		}
		update := manager.prepareUpdateConfig(
			cur,
			ptr.To(model.CronJobTypeReminderFunc),
			ptr.To("1 1 * * *"),
			ptr.To(true),
			ptr.To(`{"maxHours": 4}`),
		)
		So(update, ShouldNotBeNil)
		So(update.Name, ShouldEqual, "test")
		So(update.Type, ShouldEqual, model.CronJobTypeReminderFunc)
		So(update.Spec, ShouldEqual, "1 1 * * *")
		So(*update.Suspend, ShouldBeTrue)
		So(update.Config, ShouldResemble, datatypes.JSON(`{"maxHours": 4}`))
		So(update.EntryID, ShouldEqual, 3)

		kept := manager.prepareUpdateConfig(cur, nil, ptr.To(""), nil, nil)
		So(kept.Spec, ShouldEqual, "0 0 * * *")
		So(*kept.Suspend, ShouldBeFalse)
	})

	Convey("jobNeedsUpdate", t, func() {
		cur := &model.CronJobConfig{Type: model.CronJobTypeReminderFunc, Spec: "0 0 * * *", Config: datatypes.JSON(`{}`)}
		So(manager.jobNeedsUpdate(cur, &model.CronJobConfig{Type: cur.Type, Spec: cur.Spec}), ShouldBeFalse)
		So(manager.jobNeedsUpdate(cur, &model.CronJobConfig{Type: cur.Type, Spec: "5 0 * * *"}), ShouldBeTrue)
		So(manager.jobNeedsUpdate(cur, &model.CronJobConfig{Type: cur.Type, Spec: cur.Spec,
			Config: datatypes.JSON(`{"maxHours": 1}`)}), ShouldBeTrue)
		So(manager.shouldSuspendJob(false, true), ShouldBeTrue)
		So(manager.shouldSuspendJob(true, true), ShouldBeFalse)
	})
}
