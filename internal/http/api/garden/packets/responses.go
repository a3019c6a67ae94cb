package packets

import (
	"time"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

const dateLayout = "2006-01-02"

type AlarmResponse struct {
	ID        int      `json:"id"`
	Activity  string   `json:"activity"`
	Frequency string   `json:"frequency"`
	Date      string   `json:"date"`
	Times     []string `json:"times"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

func NewAlarmResponse(a model.Alarm) AlarmResponse {
	times := a.TimesList()
	if times == nil {
		times = []string{}
	}
	return AlarmResponse{
		ID:        a.ID,
		Activity:  a.Activity,
		Frequency: a.Frequency,
		Date:      a.Date.Format(dateLayout),
		Times:     times,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// AlarmWithCountResponse is returned by create/update, which also report
// how many calendar rows the generation pass produced.
type AlarmWithCountResponse struct {
	Alarm           AlarmResponse `json:"alarm"`
	CalendarCreated int           `json:"calendar_created"`
}

type OccurrenceResponse struct {
	ID        int    `json:"id"`
	AlarmID   int    `json:"alarm_id"`
	Activity  string `json:"activity"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}

func NewOccurrenceResponse(occ model.CalendarOccurrence) OccurrenceResponse {
	return OccurrenceResponse{
		ID:        occ.ID,
		AlarmID:   occ.AlarmID,
		Activity:  occ.Activity,
		Date:      occ.Date.Format(dateLayout),
		Time:      occ.Time,
		Status:    occ.Status,
		UpdatedAt: occ.UpdatedAt.Format(time.RFC3339),
	}
}

type CalendarResponse struct {
	Occurrences []OccurrenceResponse              `json:"occurrences"`
	Highlights  map[string]plantcare.DayHighlight `json:"highlights"`
}

type ActivityLogResponse struct {
	ID       int    `json:"id"`
	AlarmID  int    `json:"alarm_id"`
	Activity string `json:"activity"`
	Status   string `json:"status"`
	LoggedAt string `json:"logged_at"`
}

func NewActivityLogResponse(entry model.ActivityLog) ActivityLogResponse {
	return ActivityLogResponse{
		ID:       entry.ID,
		AlarmID:  entry.AlarmID,
		Activity: entry.Activity,
		Status:   entry.Status,
		LoggedAt: entry.LoggedAt.Format(time.RFC3339),
	}
}

type NotificationResponse struct {
	ID           int    `json:"id"`
	AlarmID      int    `json:"alarm_id"`
	Activity     string `json:"activity"`
	ScheduledFor string `json:"scheduled_for"`
	SentAt       string `json:"sent_at"`
}

func NewNotificationResponse(entry model.Notification) NotificationResponse {
	return NotificationResponse{
		ID:           entry.ID,
		AlarmID:      entry.AlarmID,
		Activity:     entry.Activity,
		ScheduledFor: entry.ScheduledFor.Format(time.RFC3339),
		SentAt:       entry.SentAt.Format(time.RFC3339),
	}
}
