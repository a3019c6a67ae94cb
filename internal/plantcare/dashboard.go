package plantcare

import (
	"strings"
	"time"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

// MonthBucket is one row of the dashboard chart: counts per activity for
// a single month of the current year.
type MonthBucket struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

// UpcomingAlarm describes the next scheduled reminder for one activity.
type UpcomingAlarm struct {
	AlarmID   int       `json:"alarm_id"`
	Frequency string    `json:"frequency"`
	Date      time.Time `json:"date"`
	Times     []string  `json:"times"`
}

// Dashboard is the yearly performance payload for one user.
type Dashboard struct {
	Year     int                       `json:"year"`
	Months   []MonthBucket             `json:"months"`
	Upcoming map[string]*UpcomingAlarm `json:"upcoming"`
}

// BuildDashboard buckets the user's activity log by month for the year
// containing now, and picks the next active alarm per activity. Every
// logged entry counts once toward its month regardless of status; log
// entries for unrecognized activities are skipped. Alarms must be sorted
// by date ascending, which is how the store returns them.
func BuildDashboard(logs []model.ActivityLog, alarms []model.Alarm, now time.Time) Dashboard {
	year := now.Year()

	months := make([]MonthBucket, 12)
	for i := range months {
		counts := make(map[string]int, len(model.Activities))
		for _, act := range model.Activities {
			counts[act] = 0
		}
		months[i] = MonthBucket{
			Month:  strings.ToUpper(time.Month(i + 1).String()[:3]),
			Counts: counts,
		}
	}

	for _, entry := range logs {
		if entry.LoggedAt.Year() != year {
			continue
		}
		if !model.KnownActivity(entry.Activity) {
			continue
		}
		months[int(entry.LoggedAt.Month())-1].Counts[entry.Activity]++
	}

	upcoming := make(map[string]*UpcomingAlarm, len(model.Activities))
	for _, act := range model.Activities {
		upcoming[act] = nil
	}
	for _, alarm := range alarms {
		if alarm.Status != model.AlarmStatusActive {
			continue
		}
		if existing, ok := upcoming[alarm.Activity]; !ok || existing != nil {
			continue
		}
		upcoming[alarm.Activity] = &UpcomingAlarm{
			AlarmID:   alarm.ID,
			Frequency: alarm.Frequency,
			Date:      alarm.Date,
			Times:     alarm.TimesList(),
		}
	}

	return Dashboard{Year: year, Months: months, Upcoming: upcoming}
}
