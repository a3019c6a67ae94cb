package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/plantcare"
	"github.com/Verdant-Labs-LLC/tendril/internal/redis"
)

const dashboardCacheTTL = 5 * time.Minute

type DashboardController struct {
	store db.Store
}

func NewDashboardController(store db.Store) *DashboardController {
	return &DashboardController{store: store}
}

func DashboardModule(store db.Store) api.Module {
	ctl := NewDashboardController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/garden/dashboard", ctl.getDashboard)
		c.GET("/garden/dashboard/:userId", ctl.getDashboard)
	})
}

func (dc *DashboardController) getDashboard(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	subject, apiErr := resolveSubject(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	key := dashboardCacheKey(subject)
	if cached, hit := redis.Get(ctx.Request.Context(), key); hit {
		return json.RawMessage(cached), nil
	}

	logs, err := dc.store.ListActivityLog(subject)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load activity log"}
	}
	alarms, err := dc.store.ListAlarms(subject)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to load alarms"}
	}

	dashboard := plantcare.BuildDashboard(logs, alarms, time.Now())

	if payload, err := json.Marshal(dashboard); err == nil {
		redis.Set(ctx.Request.Context(), key, payload, dashboardCacheTTL)
	} else {
		log.Warn().Err(err).Msg("could not marshal dashboard for caching")
	}

	return dashboard, nil
}
