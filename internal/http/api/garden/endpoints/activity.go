package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api/garden/packets"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

type ActivityController struct {
	store db.Store
}

func NewActivityController(store db.Store) *ActivityController {
	return &ActivityController{store: store}
}

func ActivityModule(store db.Store) api.Module {
	ctl := NewActivityController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/garden/activity", ctl.listActivity)
		c.GET("/garden/activity/:userId", ctl.listActivity)
	})
}

func (ac *ActivityController) listActivity(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	subject, apiErr := resolveSubject(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	entries, err := ac.store.ListActivityLog(subject)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list activity log"}
	}

	response := make([]packets.ActivityLogResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, packets.NewActivityLogResponse(entry))
	}
	return response, nil
}
