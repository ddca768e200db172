package handlers

import (
	"urbanfix/models"

	"github.com/gin-gonic/gin"
)

// identity reads the verified identity set by the auth middleware.
func identity(c *gin.Context) (string, models.Role) {
	return c.GetString("userID"), models.Role(c.GetString("role"))
}
