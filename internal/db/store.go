// exposes a Store interface that is passed to API calls and to the
// reminder notifier, so both can be tested against fakes.
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

// DueReminder is one (alarm, occurrence) pair whose reminder time has
// arrived.
type DueReminder struct {
	UserID   int       `db:"user_id"`
	AlarmID  int       `db:"alarm_id"`
	Activity string    `db:"activity"`
	Date     time.Time `db:"date"`
	Time     string    `db:"time"`
}

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// alarm functions
	CreateAlarm(userID int, activity, frequency string, date time.Time, times string) (model.Alarm, error)
	GetAlarmByID(id int) (model.Alarm, error)
	ListAlarms(userID int) ([]model.Alarm, error)
	UpdateAlarm(id int, activity, frequency *string, date *time.Time, times, status *string) (model.Alarm, error)
	DeleteAlarm(id int) error

	// calendar functions
	InsertOccurrences(userID, alarmID int, seeds []plantcare.OccurrenceSeed) (int, error)
	ListOccurrences(userID int) ([]model.CalendarOccurrence, error)
	GetOccurrenceByID(id int) (model.CalendarOccurrence, error)
	SetOccurrenceStatus(id int, status string) (model.CalendarOccurrence, error)
	DeleteOccurrencesFrom(alarmID int, from time.Time) error

	// activity log functions
	ListActivityLog(userID int) ([]model.ActivityLog, error)

	// notification functions
	DueReminders(date time.Time, hhmm string, includeUntimed bool) ([]DueReminder, error)
	RecordNotification(userID, alarmID int, activity string, scheduledFor time.Time) (bool, error)
	ListNotifications(userID int) ([]model.Notification, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	if conn == nil {
		conn = DB
	}
	return &pgStore{db: conn}
}
