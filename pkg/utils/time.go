package utils

import (
	"time"

	"github.com/raids-lab/agencyos/pkg/config"
	"github.com/raids-lab/agencyos/pkg/logutils"
)

func GetLocalTime() time.Time {
	timeZone := config.GetConfig().Postgres.TimeZone
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		logutils.Log.Errorf("Failed to load location: %v", err)
		return time.Now()
	}
	return time.Now().In(loc)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
