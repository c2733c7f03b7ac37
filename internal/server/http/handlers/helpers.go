package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tntx/fleetport/internal/domain/model"
	"github.com/tntx/fleetport/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated account from context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}
