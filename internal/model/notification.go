package model

import "time"

// Notification is one reminder emitted by the notifier poll. The
// (alarm_id, scheduled_for) pair is unique so overlapping polls cannot
// double-send.
type Notification struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	AlarmID      int       `db:"alarm_id" json:"alarm_id"`
	Activity     string    `db:"activity" json:"activity"`
	ScheduledFor time.Time `db:"scheduled_for" json:"scheduled_for"`
	SentAt       time.Time `db:"sent_at" json:"sent_at"`
}
