package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// VerifyAuth confirms the caller's token is still valid; the middleware has
// already done the real work by the time this runs.
func VerifyAuth(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user_id":       userID,
		"email":         c.GetString("email"),
		"role":          c.GetString("role"),
	})
}
