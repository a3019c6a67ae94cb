package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api/garden/packets"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

type AlarmController struct {
	store db.Store
}

func NewAlarmController(store db.Store) *AlarmController {
	return &AlarmController{store: store}
}

func AlarmModule(store db.Store) api.Module {
	ctl := NewAlarmController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/garden/alarms", ctl.createAlarm)
		c.GET("/garden/alarms", ctl.listAlarms)
		c.GET("/garden/alarms/:userId", ctl.listAlarms)
		c.PUT("/garden/alarms/:id", ctl.updateAlarm)
		c.DELETE("/garden/alarms/:id", ctl.deleteAlarm)
	})
}

// regenerate expands the alarm and bulk-writes the surviving rows,
// returning how many were created. Seeds colliding with rows that
// already exist for the alarm (surviving past rows after an update) are
// dropped by the unique index and not counted.
func (a *AlarmController) regenerate(alarm model.Alarm) (int, error) {
	seeds := plantcare.GenerateOccurrences(
		alarm.Activity,
		alarm.Date,
		plantcare.ParseFrequency(alarm.Frequency),
		alarm.TimesList(),
	)
	return a.store.InsertOccurrences(alarm.UserID, alarm.ID, seeds)
}

func (a *AlarmController) createAlarm(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateAlarmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if !model.KnownActivity(request.Activity) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown activity"}
	}
	date, err := parseDate(request.Date)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
	}
	if !validTimes(request.Times) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "times must be HH:mm"}
	}

	frequency := plantcare.ParseFrequency(request.Frequency).String()

	alarm, err := a.store.CreateAlarm(user.ID, request.Activity, frequency, date, model.JoinTimes(request.Times))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create alarm"}
	}

	created, err := a.regenerate(alarm)
	if err != nil {
		// the alarm stays persisted with no calendar rows; no cleanup
		log.Error().Err(err).Int("alarm_id", alarm.ID).Msg("occurrence generation failed after create")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate calendar"}
	}

	dropDashboardCache(ctx, user.ID)

	return api.Created{Body: packets.AlarmWithCountResponse{
		Alarm:           packets.NewAlarmResponse(alarm),
		CalendarCreated: created,
	}}, nil
}

func (a *AlarmController) listAlarms(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	subject, apiErr := resolveSubject(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	list, err := a.store.ListAlarms(subject)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list alarms"}
	}

	response := make([]packets.AlarmResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.NewAlarmResponse(it))
	}
	return response, nil
}

func (a *AlarmController) updateAlarm(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid alarm id"}
	}

	owned, err := a.store.GetAlarmByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "alarm not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load alarm"}
	}
	if owned.UserID != user.ID && !user.IsAdmin {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}

	var request packets.UpdateAlarmRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if request.Activity != nil && !model.KnownActivity(*request.Activity) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown activity"}
	}
	if request.Status != nil && *request.Status != model.AlarmStatusActive && *request.Status != model.AlarmStatusInactive {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "status must be active or inactive"}
	}

	var date *time.Time
	if request.Date != nil {
		parsed, err := parseDate(*request.Date)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "date must be YYYY-MM-DD"}
		}
		date = &parsed
	}

	var frequency *string
	if request.Frequency != nil {
		canonical := plantcare.ParseFrequency(*request.Frequency).String()
		frequency = &canonical
	}

	var times *string
	if request.Times != nil {
		if !validTimes(*request.Times) {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "times must be HH:mm"}
		}
		joined := model.JoinTimes(*request.Times)
		times = &joined
	}

	alarm, err := a.store.UpdateAlarm(id, request.Activity, frequency, date, times, request.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "alarm not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update alarm"}
	}

	// regenerate the future window: past rows stay as history
	today := plantcare.DateOnly(time.Now())
	if err := a.store.DeleteOccurrencesFrom(id, today); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reset calendar"}
	}

	created, err := a.regenerate(alarm)
	if err != nil {
		log.Error().Err(err).Int("alarm_id", alarm.ID).Msg("occurrence generation failed after update")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not generate calendar"}
	}

	dropDashboardCache(ctx, alarm.UserID)

	return packets.AlarmWithCountResponse{
		Alarm:           packets.NewAlarmResponse(alarm),
		CalendarCreated: created,
	}, nil
}

func (a *AlarmController) deleteAlarm(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid alarm id"}
	}

	owned, err := a.store.GetAlarmByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "alarm not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load alarm"}
	}
	if owned.UserID != user.ID && !user.IsAdmin {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}

	if err := a.store.DeleteAlarm(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "alarm not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete alarm"}
	}

	dropDashboardCache(ctx, owned.UserID)

	return gin.H{"message": "deleted"}, nil
}
