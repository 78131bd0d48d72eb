package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type databasePinger interface {
	PingContext(ctx context.Context) error
}

// Health reports liveness plus current database connectivity.
func Health(db databasePinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		connected := db.PingContext(c.Request.Context()) == nil

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": connected,
		})
	}
}
