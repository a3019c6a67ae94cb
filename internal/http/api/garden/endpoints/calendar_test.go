package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Verdant-Labs-LLC/tendril/internal/http/api/garden/packets"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

func TestStatusTransitionAppendsLog(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store, testUser)

	w := doRequest(r, http.MethodPost, "/api/garden/alarms",
		`{"activity":"Fertilizing","date":"2099-03-01","times":["08:00"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	occurrences, err := store.ListOccurrences(testUser.ID)
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	occID := occurrences[0].ID

	statusPath := fmt.Sprintf("/api/garden/calendar/%d/status", occID)

	// completed: one log entry
	sw := doRequest(r, http.MethodPut, statusPath, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, sw.Code)

	var occ packets.OccurrenceResponse
	require.NoError(t, json.Unmarshal(sw.Body.Bytes(), &occ))
	assert.Equal(t, model.OccurrenceCompleted, occ.Status)

	logs, err := store.ListActivityLog(testUser.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, model.ActivityFertilizing, logs[0].Activity)

	// back to upcoming: no retraction and no new entry
	sw = doRequest(r, http.MethodPut, statusPath, `{"status":"upcoming"}`)
	require.Equal(t, http.StatusOK, sw.Code)
	logs, err = store.ListActivityLog(testUser.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	// re-entering completed appends again
	sw = doRequest(r, http.MethodPut, statusPath, `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, sw.Code)
	logs, err = store.ListActivityLog(testUser.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestStatusTransitionErrors(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store, testUser)

	w := doRequest(r, http.MethodPut, "/api/garden/calendar/abc/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPut, "/api/garden/calendar/1/status", `{"status":"done"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPut, "/api/garden/calendar/999/status", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalendarHighlights(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store, testUser)

	w := doRequest(r, http.MethodPost, "/api/garden/alarms",
		`{"activity":"Watering","frequency":"2 times a day","date":"2099-05-01","times":["08:00","20:00"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	cw := doRequest(r, http.MethodGet, "/api/garden/calendar", "")
	require.Equal(t, http.StatusOK, cw.Code)

	var calendar packets.CalendarResponse
	require.NoError(t, json.Unmarshal(cw.Body.Bytes(), &calendar))
	require.Len(t, calendar.Occurrences, 2)

	day, ok := calendar.Highlights["2099-05-01"]
	require.True(t, ok)
	assert.Equal(t, 2, day.Total)
	assert.Equal(t, 2, day.ByStatus[model.OccurrenceUpcoming])
	assert.Equal(t, 2, day.ByActivity[model.ActivityWatering])
	assert.Len(t, day.Items, 2)
}

func TestActivityLogNewestFirst(t *testing.T) {
	store := newMemStore()
	r := newTestRouter(store, testUser)

	w := doRequest(r, http.MethodPost, "/api/garden/alarms",
		`{"activity":"Pruning","frequency":"Daily","date":"2099-01-01"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	occurrences, err := store.ListOccurrences(testUser.ID)
	require.NoError(t, err)
	require.True(t, len(occurrences) >= 2)

	for _, occ := range occurrences[:2] {
		sw := doRequest(r, http.MethodPut,
			fmt.Sprintf("/api/garden/calendar/%d/status", occ.ID), `{"status":"missed"}`)
		require.Equal(t, http.StatusOK, sw.Code)
	}

	aw := doRequest(r, http.MethodGet, "/api/garden/activity", "")
	require.Equal(t, http.StatusOK, aw.Code)

	var entries []packets.ActivityLogResponse
	require.NoError(t, json.Unmarshal(aw.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Greater(t, entries[0].ID, entries[1].ID)
}
