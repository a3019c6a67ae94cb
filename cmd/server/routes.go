package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/db"
	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	authapi "github.com/Verdant-Labs-LLC/tendril/internal/http/api/auth/endpoints"
	gardenapi "github.com/Verdant-Labs-LLC/tendril/internal/http/api/garden/endpoints"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, env Environment, store db.Store) {
	// CORS
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
		Auth:   false,
	},
		authapi.AuthPublicModule(env.SecretKey, store),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix:    "/api",
		Auth:      true,
		SecretKey: env.SecretKey,
		Store:     store,
	},
		// session endpoints that require auth
		authapi.AuthSessionModule(env.SecretKey, store),
		// plant-care modules
		gardenapi.AlarmModule(store),
		gardenapi.CalendarModule(store),
		gardenapi.ActivityModule(store),
		gardenapi.NotificationModule(store),
		gardenapi.DashboardModule(store),
	)
}
