package notify

import "github.com/rs/zerolog/log"

// logPublisher stands in when no MQTT broker is configured (local
// development); reminders are only written to the log.
type logPublisher struct{}

func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) PublishReminder(msg ReminderMessage) error {
	log.Info().
		Int("user_id", msg.UserID).
		Int("alarm_id", msg.AlarmID).
		Str("activity", msg.Activity).
		Str("date", msg.Date).
		Str("time", msg.Time).
		Msg("reminder due")
	return nil
}

func (logPublisher) Close() {}
