package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index handles GET / with a plain text liveness message.
func Index(c *gin.Context) {
	c.String(http.StatusOK, "Hello JMA Area!")
}

// Health reports the number of municipalities loaded.
func Health(entries int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"entries": entries,
		})
	}
}
