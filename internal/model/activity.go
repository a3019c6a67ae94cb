package model

import "time"

// ActivityLog records an occurrence being marked completed or missed.
// Entries are append-only; they go away only when the owning alarm is
// deleted.
type ActivityLog struct {
	ID       int       `db:"id" json:"id"`
	UserID   int       `db:"user_id" json:"user_id"`
	AlarmID  int       `db:"alarm_id" json:"alarm_id"`
	Activity string    `db:"activity" json:"activity"`
	Status   string    `db:"status" json:"status"`
	LoggedAt time.Time `db:"logged_at" json:"logged_at"`
}
