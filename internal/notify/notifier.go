package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

// untimed occurrences fire once a day at this slot.
const defaultReminderTime = "09:00"

// Notifier polls for due reminders on a fixed interval, records a
// notification row per hit and hands the payload to the publisher. It
// only reads alarms and occurrences; concurrent alarm mutation during a
// poll is accepted.
type Notifier struct {
	store        db.Store
	publisher    Publisher
	pollInterval time.Duration
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

func NewNotifier(store db.Store, publisher Publisher, pollInterval time.Duration) *Notifier {
	return &Notifier{
		store:        store,
		publisher:    publisher,
		pollInterval: pollInterval,
	}
}

// Start begins the polling loop.
func (n *Notifier) Start() {
	if n.ctx != nil {
		log.Warn().Msg("notifier already started")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.ctx = ctx
	n.cancel = cancel
	n.wg.Add(1)
	go n.run()
	log.Info().Dur("poll_interval", n.pollInterval).Msg("reminder notifier started")
}

// Stop cancels the loop and waits for an in-flight poll to finish.
func (n *Notifier) Stop() {
	if n.cancel != nil {
		n.cancel()
	}
	n.wg.Wait()
	n.publisher.Close()
	log.Info().Msg("reminder notifier stopped")
	n.cancel = nil
	n.ctx = nil
}

func (n *Notifier) run() {
	defer n.wg.Done()

	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.ctx.Done():
			return
		case tick := <-ticker.C:
			n.Poll(tick)
		}
	}
}

// Poll runs one reminder pass for the given wall-clock instant.
func (n *Notifier) Poll(now time.Time) {
	date := plantcare.DateOnly(now)
	hhmm := now.Format("15:04")

	due, err := n.store.DueReminders(date, hhmm, hhmm == defaultReminderTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to load due reminders")
		return
	}

	for _, reminder := range due {
		scheduledFor := date
		if reminder.Time != "" {
			if at, err := time.Parse("15:04", reminder.Time); err == nil {
				scheduledFor = date.Add(time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute)
			}
		}

		created, err := n.store.RecordNotification(reminder.UserID, reminder.AlarmID, reminder.Activity, scheduledFor)
		if err != nil {
			log.Error().Err(err).Int("alarm_id", reminder.AlarmID).Msg("failed to record notification")
			continue
		}
		if !created {
			// an earlier poll already handled this slot
			continue
		}

		msg := ReminderMessage{
			UserID:   reminder.UserID,
			AlarmID:  reminder.AlarmID,
			Activity: reminder.Activity,
			Date:     date.Format("2006-01-02"),
			Time:     reminder.Time,
		}
		if err := n.publisher.PublishReminder(msg); err != nil {
			log.Warn().Err(err).Int("alarm_id", reminder.AlarmID).Msg("failed to publish reminder")
		}
	}
}
