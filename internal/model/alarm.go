package model

import (
	"strings"
	"time"
)

// Care activities a user can be reminded about.
const (
	ActivityWatering    = "Watering"
	ActivityPruning     = "Pruning"
	ActivityFertilizing = "Fertilizing"
)

// Activities lists every recognized care activity, in dashboard column order.
var Activities = []string{ActivityWatering, ActivityPruning, ActivityFertilizing}

// KnownActivity reports whether s is one of the recognized care activities.
func KnownActivity(s string) bool {
	for _, a := range Activities {
		if a == s {
			return true
		}
	}
	return false
}

const (
	AlarmStatusActive   = "active"
	AlarmStatusInactive = "inactive"
)

// Alarm is a user-defined plant-care reminder definition. Times holds
// zero or more "HH:mm" strings; it is persisted as a comma-joined text
// column so TimesList is used to split it back out.
type Alarm struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"user_id"`
	Activity  string    `db:"activity" json:"activity"`
	Frequency string    `db:"frequency" json:"frequency"`
	Date      time.Time `db:"date" json:"date"`
	Times     string    `db:"times" json:"-"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TimesList splits the stored times column into its "HH:mm" entries.
func (a Alarm) TimesList() []string {
	if a.Times == "" {
		return nil
	}
	return strings.Split(a.Times, ",")
}

// JoinTimes builds the stored representation of a times list.
func JoinTimes(times []string) string {
	return strings.Join(times, ",")
}
