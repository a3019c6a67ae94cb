package endpoints

import (
	"database/sql"
	"fmt"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

// memStore is an in-memory db.Store for handler tests. User methods come
// from the embedded interface and are never called here.
type memStore struct {
	db.Store

	mu            sync.Mutex
	nextID        int
	alarms        map[int]model.Alarm
	occs          map[int]model.CalendarOccurrence
	logs          []model.ActivityLog
	notified      map[string]bool
	notifications []model.Notification
	logCounter    int
}

func newMemStore() *memStore {
	return &memStore{
		alarms:   make(map[int]model.Alarm),
		occs:     make(map[int]model.CalendarOccurrence),
		notified: make(map[string]bool),
	}
}

func (m *memStore) next() int {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateAlarm(userID int, activity, frequency string, date time.Time, times string) (model.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	a := model.Alarm{
		ID:        m.next(),
		UserID:    userID,
		Activity:  activity,
		Frequency: frequency,
		Date:      date,
		Times:     times,
		Status:    model.AlarmStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.alarms[a.ID] = a
	return a, nil
}

func (m *memStore) GetAlarmByID(id int) (model.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.alarms[id]
	if !ok {
		return model.Alarm{}, sql.ErrNoRows
	}
	return a, nil
}

func (m *memStore) ListAlarms(userID int) ([]model.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Alarm
	for _, a := range m.alarms {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memStore) UpdateAlarm(id int, activity, frequency *string, date *time.Time, times, status *string) (model.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.alarms[id]
	if !ok {
		return model.Alarm{}, sql.ErrNoRows
	}
	if activity != nil {
		a.Activity = *activity
	}
	if frequency != nil {
		a.Frequency = *frequency
	}
	if date != nil {
		a.Date = *date
	}
	if times != nil {
		a.Times = *times
	}
	if status != nil {
		a.Status = *status
	}
	a.UpdatedAt = time.Now()
	m.alarms[id] = a
	return a, nil
}

func (m *memStore) DeleteAlarm(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.alarms[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.alarms, id)
	for occID, occ := range m.occs {
		if occ.AlarmID == id {
			delete(m.occs, occID)
		}
	}
	var kept []model.ActivityLog
	for _, entry := range m.logs {
		if entry.AlarmID != id {
			kept = append(kept, entry)
		}
	}
	m.logs = kept
	return nil
}

func occKey(alarmID int, date time.Time, at string) string {
	return fmt.Sprintf("%d|%s|%s", alarmID, date.Format("2006-01-02"), at)
}

func (m *memStore) InsertOccurrences(userID, alarmID int, seeds []plantcare.OccurrenceSeed) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing := make(map[string]bool)
	for _, occ := range m.occs {
		if occ.AlarmID == alarmID {
			existing[occKey(alarmID, occ.Date, occ.Time)] = true
		}
	}
	created := 0
	now := time.Now()
	for _, seed := range seeds {
		key := occKey(alarmID, seed.Date, seed.Time)
		if existing[key] {
			continue
		}
		existing[key] = true
		occ := model.CalendarOccurrence{
			ID:        m.next(),
			UserID:    userID,
			AlarmID:   alarmID,
			Activity:  seed.Activity,
			Date:      seed.Date,
			Time:      seed.Time,
			Status:    model.OccurrenceUpcoming,
			CreatedAt: now,
			UpdatedAt: now,
		}
		m.occs[occ.ID] = occ
		created++
	}
	return created, nil
}

func (m *memStore) ListOccurrences(userID int) ([]model.CalendarOccurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.CalendarOccurrence
	for _, occ := range m.occs {
		if occ.UserID == userID {
			out = append(out, occ)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memStore) GetOccurrenceByID(id int) (model.CalendarOccurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	occ, ok := m.occs[id]
	if !ok {
		return model.CalendarOccurrence{}, sql.ErrNoRows
	}
	return occ, nil
}

func (m *memStore) SetOccurrenceStatus(id int, status string) (model.CalendarOccurrence, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	occ, ok := m.occs[id]
	if !ok {
		return model.CalendarOccurrence{}, sql.ErrNoRows
	}
	occ.Status = status
	occ.UpdatedAt = time.Now()
	m.occs[id] = occ
	if status == model.OccurrenceCompleted || status == model.OccurrenceMissed {
		m.logCounter++
		m.logs = append(m.logs, model.ActivityLog{
			ID:       m.logCounter,
			UserID:   occ.UserID,
			AlarmID:  occ.AlarmID,
			Activity: occ.Activity,
			Status:   status,
			LoggedAt: time.Now(),
		})
	}
	return occ, nil
}

func (m *memStore) DeleteOccurrencesFrom(alarmID int, from time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, occ := range m.occs {
		if occ.AlarmID == alarmID && !occ.Date.Before(from) {
			delete(m.occs, id)
		}
	}
	return nil
}

func (m *memStore) ListActivityLog(userID int) ([]model.ActivityLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.ActivityLog
	for _, entry := range m.logs {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memStore) DueReminders(date time.Time, hhmm string, includeUntimed bool) ([]db.DueReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db.DueReminder
	for _, occ := range m.occs {
		alarm, ok := m.alarms[occ.AlarmID]
		if !ok || alarm.Status != model.AlarmStatusActive || occ.Status != model.OccurrenceUpcoming {
			continue
		}
		if !occ.Date.Equal(date) {
			continue
		}
		if occ.Time == hhmm || (occ.Time == "" && includeUntimed) {
			out = append(out, db.DueReminder{
				UserID:   occ.UserID,
				AlarmID:  occ.AlarmID,
				Activity: occ.Activity,
				Date:     occ.Date,
				Time:     occ.Time,
			})
		}
	}
	return out, nil
}

func (m *memStore) RecordNotification(userID, alarmID int, activity string, scheduledFor time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := fmt.Sprintf("%d|%s", alarmID, scheduledFor.Format(time.RFC3339))
	if m.notified[key] {
		return false, nil
	}
	m.notified[key] = true
	m.notifications = append(m.notifications, model.Notification{
		ID:           len(m.notifications) + 1,
		UserID:       userID,
		AlarmID:      alarmID,
		Activity:     activity,
		ScheduledFor: scheduledFor,
		SentAt:       time.Now(),
	})
	return true, nil
}

func (m *memStore) ListNotifications(userID int) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Notification
	for _, entry := range m.notifications {
		if entry.UserID == userID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// newTestRouter mounts the garden modules with the given user injected
// as the authenticated identity.
func newTestRouter(store db.Store, user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Middleware: []gin.HandlerFunc{func(c *gin.Context) {
			c.Set("currentUser", user)
		}},
	},
		AlarmModule(store),
		CalendarModule(store),
		ActivityModule(store),
		NotificationModule(store),
		DashboardModule(store),
	)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
