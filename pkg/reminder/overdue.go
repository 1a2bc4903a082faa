package reminder

import (
	"context"
	"errors"
	"time"

	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
	"github.com/raids-lab/agencyos/pkg/constants"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

type RemindOverdueTasksRequest struct {
	// LookbackDays limits the digest to tasks due in the last N days. 0 includes every overdue task.
	LookbackDays int `json:"lookbackDays"`
}

// OverdueFilter selects open tasks due before today.
func OverdueFilter(today time.Time, lookbackDays int) viewmodel.FilterSpec {
	yesterday := today.AddDate(0, 0, -1)
	rng := &viewmodel.DateRange{End: yesterday.Format(constants.DateLayout)}
	if lookbackDays > 0 {
		rng.Start = today.AddDate(0, 0, -lookbackDays).Format(constants.DateLayout)
	}
	return viewmodel.FilterSpec{
		Status: lo.Map(model.OpenTaskStatuses(), func(s model.TaskStatus, _ int) string {
			return string(s)
		}),
		DueDate: rng,
	}
}

// GroupByAssignee buckets tasks per assignee id, keeping each task's order. Unassigned tasks are dropped.
func GroupByAssignee(records []viewmodel.TaskRecord) map[string][]viewmodel.TaskRecord {
	out := map[string][]viewmodel.TaskRecord{}
	for _, r := range records {
		for _, id := range lo.Uniq(r.AssigneeIDs) {
			out[id] = append(out[id], r)
		}
	}
	return out
}

// RemindOverdueTasks sends each member a digest of their overdue tasks.
// It returns the reminded task ids per profile id.
func RemindOverdueTasks(c context.Context, clients *Clients, req *RemindOverdueTasksRequest) (map[string][]string, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}
	collections, err := clients.Store.LoadCollections(c, query.Scope{})
	if err != nil {
		return nil, err
	}
	records := viewmodel.ApplyFilter(viewmodel.ResolveTaskRecords(collections), OverdueFilter(clients.now(), req.LookbackDays))
	records, err = viewmodel.SortRecords(records, viewmodel.SortSpec{Field: viewmodel.SortByDueDate})
	if err != nil {
		return nil, err
	}

	groups := GroupByAssignee(records)
	profiles, err := clients.Store.Profiles(c, lo.Keys(groups))
	if err != nil {
		return nil, err
	}

	reminded := map[string][]string{}
	for i := range profiles {
		p := &profiles[i]
		if p.Role == model.RoleClient {
			continue
		}
		tasks := groups[p.ID]
		if err := clients.Alerter.OverdueTasksAlert(c, p, tasks, clients.now()); err != nil {
			klog.Errorf("Failed to remind %s of overdue tasks: %v", p.Name, err)
			continue
		}
		reminded[p.ID] = viewmodel.IDs(tasks)
	}
	return reminded, nil
}
