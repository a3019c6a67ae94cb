package endpoints

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api/garden/packets"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

type NotificationController struct {
	store db.Store
}

func NewNotificationController(store db.Store) *NotificationController {
	return &NotificationController{store: store}
}

func NotificationModule(store db.Store) api.Module {
	ctl := NewNotificationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/garden/notifications", ctl.listNotifications)
		c.GET("/garden/notifications/:userId", ctl.listNotifications)
	})
}

func (nc *NotificationController) listNotifications(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	subject, apiErr := resolveSubject(ctx, user)
	if apiErr != nil {
		return nil, apiErr
	}

	entries, err := nc.store.ListNotifications(subject)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list notifications"}
	}

	response := make([]packets.NotificationResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, packets.NewNotificationResponse(entry))
	}
	return response, nil
}
