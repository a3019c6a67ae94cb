package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Verdant-Labs-LLC/tendril/internal/http/api"
	"github.com/Verdant-Labs-LLC/tendril/internal/model"
	"github.com/Verdant-Labs-LLC/tendril/internal/redis"
)

const dateLayout = "2006-01-02"

// resolveSubject decides whose data a read endpoint returns. The
// authenticated identity is used unless the route carries an explicit
// :userId override, which only admins may use.
func resolveSubject(ctx *gin.Context, user *model.User) (int, *api.APIError) {
	raw := ctx.Param("userId")
	if raw == "" {
		return user.ID, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "invalid user id"}
	}
	if id != user.ID && !user.IsAdmin {
		return 0, &api.APIError{Code: http.StatusForbidden, Message: "forbidden"}
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func validTimes(times []string) bool {
	for _, at := range times {
		if _, err := time.Parse("15:04", at); err != nil {
			return false
		}
	}
	return true
}

func dashboardCacheKey(userID int) string {
	return fmt.Sprintf("garden:dashboard:%d", userID)
}

// dropDashboardCache is called by every mutating endpoint; the cached
// dashboard payload is stale as soon as alarms or logs change.
func dropDashboardCache(ctx *gin.Context, userID int) {
	redis.Del(ctx.Request.Context(), dashboardCacheKey(userID))
}
