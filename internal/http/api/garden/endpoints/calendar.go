package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api/garden/packets"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
)

type CalendarController struct {
	store db.Store
}

func NewCalendarController(store db.Store) *CalendarController {
	return &CalendarController{store: store}
}

func CalendarModule(store db.Store) api.Module {
	ctl := NewCalendarController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/garden/calendar", ctl.getCalendar)
		c.GET("/garden/calendar/:userId", ctl.getCalendar)
		c.PUT("/garden/calendar/:id/status", ctl.setStatus)
	})
}

func (cc *CalendarController) getCalendar(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	subject, apiErr := resolveSubject(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	occurrences, err := cc.store.ListOccurrences(subject)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list occurrences"}
	}

	rows := make([]packets.OccurrenceResponse, 0, len(occurrences))
	for _, occ := range occurrences {
		rows = append(rows, packets.NewOccurrenceResponse(occ))
	}

	return packets.CalendarResponse{
		Occurrences: rows,
		Highlights:  plantcare.BuildHighlights(occurrences),
	}, nil
}

func (cc *CalendarController) setStatus(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid occurrence id"}
	}

	var request packets.SetOccurrenceStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}
	if !model.ValidOccurrenceStatus(request.Status) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "status must be upcoming, completed or missed"}
	}

	owned, err := cc.store.GetOccurrenceByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "occurrence not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load occurrence"}
	}
	if owned.UserID != user.ID && !user.IsAdmin {
		return nil, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}

	occ, err := cc.store.SetOccurrenceStatus(id, request.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "occurrence not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update occurrence"}
	}

	dropDashboardCache(ctx, occ.UserID)

	return packets.NewOccurrenceResponse(occ), nil
}
