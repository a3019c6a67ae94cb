package model

import "time"

const (
	OccurrenceUpcoming  = "upcoming"
	OccurrenceCompleted = "completed"
	OccurrenceMissed    = "missed"
)

// ValidOccurrenceStatus reports whether s is an allowed occurrence status.
func ValidOccurrenceStatus(s string) bool {
	return s == OccurrenceUpcoming || s == OccurrenceCompleted || s == OccurrenceMissed
}

// CalendarOccurrence is one dated (and optionally timed) instance derived
// from an Alarm. Time is an "HH:mm" string, empty for all-day reminders.
type CalendarOccurrence struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	AlarmID   int       `db:"alarm_id" json:"alarm_id"`
	Activity  string    `db:"activity" json:"activity"`
	Date      time.Time `db:"date" json:"date"`
	Time      string    `db:"time" json:"time"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
