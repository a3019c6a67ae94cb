package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/http/middleware"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
)

type APIError struct {
	Code    int
	Message string
}

// Created wraps a handler result that should be written with 201
// instead of the default 200.
type Created struct {
	Body any
}

type HandlerFuncWithAuth func(ctx *gin.Context, user *model.User) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func writeResult(ctx *gin.Context, result any) {
	if created, ok := result.(Created); ok {
		ctx.JSON(http.StatusCreated, created.Body)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := middleware.GetCurrentUser(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiErr := h(ctx, user)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		writeResult(ctx, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
			return
		}

		writeResult(ctx, result)
	}
}
