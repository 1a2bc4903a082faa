package reminder

import (
	"context"
	"errors"
	"time"

	"k8s.io/klog/v2"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/dao/query"
)

const defaultMaxTimerHours = 12

type SweepStaleTimersRequest struct {
	MaxHours *int `json:"maxHours"`
}

// IsStale reports whether a running entry has gone past maxAge at now.
func IsStale(e *model.TimeEntry, now time.Time, maxAge time.Duration) bool {
	return e.EndedAt == nil && now.Sub(e.StartedAt) > maxAge
}

// SweepStaleTimers stops timers that ran longer than the limit. The entry is closed at
// the limit so a forgotten timer does not book the whole night.
func SweepStaleTimers(c context.Context, clients *Clients, req *SweepStaleTimersRequest) (map[string][]string, error) {
	if req == nil {
		return nil, errors.New("invalid request")
	}
	maxAge := defaultMaxTimerHours * time.Hour
	if req.MaxHours != nil && *req.MaxHours > 0 {
		maxAge = time.Duration(*req.MaxHours) * time.Hour
	}

	open, err := clients.Store.OpenTimeEntries(c, "", model.TimeEntryTimer)
	if err != nil {
		return nil, err
	}
	now := clients.now()
	stopped := []string{}
	for i := range open {
		entry := &open[i]
		if !IsStale(entry, now, maxAge) {
			continue
		}
		closed, err := clients.Store.CloseTimeEntry(c, entry.ID, entry.StartedAt.Add(maxAge))
		if err != nil {
			if !errors.Is(err, query.ErrNoOpenEntry) {
				klog.Errorf("Failed to stop timer %s: %v", entry.ID, err)
			}
			continue
		}
		if clients.State != nil {
			clients.State.ForgetEntry(entry.UserID, entry.ID)
		}
		stopped = append(stopped, entry.ID)

		profile, err := query.Get[model.Profile](c, clients.DB, entry.UserID)
		if err != nil {
			klog.Warningf("No profile for user %s: %v", entry.UserID, err)
			continue
		}
		if err := clients.Alerter.StaleTimerAlert(c, profile, closed); err != nil {
			klog.Errorf("Failed to notify %s of stopped timer: %v", profile.Name, err)
		}
	}
	return map[string][]string{"stopped": stopped}, nil
}
