package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dskvich/image-api/pkg/logger"
)

// respondError maps any flow error to the uniform {"error": msg} body.
// Everything past request validation surfaces as a 500: configuration gaps,
// upstream failures, job failures and persistence errors alike.
func respondError(c *gin.Context, err error) {
	slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), logger.Err(err))

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
