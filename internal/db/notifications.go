package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

// lists upcoming occurrences of active alarms whose reminder time is
// hhmm on date. Untimed occurrences ride along when includeUntimed is
// set (the notifier passes it at the daily default reminder slot).
func (s *pgStore) DueReminders(date time.Time, hhmm string, includeUntimed bool) ([]DueReminder, error) {
	var out []DueReminder
	const q = `
	SELECT co.user_id, co.alarm_id, co.activity, co.date, co.time
	  FROM calendar_occurrences co
	  JOIN alarms a ON a.id = co.alarm_id
	 WHERE a.status = 'active'
	   AND co.status = 'upcoming'
	   AND co.date = $1
	   AND (co.time = $2 OR (co.time = '' AND $3 = true))
	 ORDER BY co.user_id, co.alarm_id;`
	if err := s.db.Select(&out, q, date, hhmm, includeUntimed); err != nil {
		log.Error().Err(err).Msg("DueReminders failed")
		return nil, err
	}
	return out, nil
}

// records that a reminder fired. Returns false when a notification for
// the same (alarm, scheduled_for) already exists, so overlapping polls
// cannot double-send.
func (s *pgStore) RecordNotification(userID, alarmID int, activity string, scheduledFor time.Time) (bool, error) {
	const q = `
	INSERT INTO notifications (user_id, alarm_id, activity, scheduled_for, sent_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (alarm_id, scheduled_for) DO NOTHING;`
	res, err := s.db.Exec(q, userID, alarmID, activity, scheduledFor)
	if err != nil {
		log.Error().Err(err).Int("alarm_id", alarmID).Msg("RecordNotification failed")
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (s *pgStore) ListNotifications(userID int) ([]model.Notification, error) {
	var out []model.Notification
	const q = `
	SELECT id, user_id, alarm_id, activity, scheduled_for, sent_at
	  FROM notifications
	 WHERE user_id = $1
	 ORDER BY sent_at DESC, id DESC;`
	if err := s.db.Select(&out, q, userID); err != nil {
		log.Error().Err(err).Msg("ListNotifications failed")
		return nil, err
	}
	return out, nil
}
