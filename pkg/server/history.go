package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/dskvich/image-api/pkg/domain"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyLister interface {
	List(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
}

type historyRecordResponse struct {
	ID          int64             `json:"id"`
	Kind        domain.RecordKind `json:"kind"`
	ImagePrefix string            `json:"imagePrefix"`
	Prompt      string            `json:"prompt,omitempty"`
	Description string            `json:"description,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// History lists the most recent request records, newest first.
func History(history historyLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultHistoryLimit
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
				return
			}
			limit = min(n, maxHistoryLimit)
		}

		recs, err := history.List(c.Request.Context(), limit)
		if err != nil {
			respondError(c, err)
			return
		}

		resp := lo.Map(recs, func(rec domain.HistoryRecord, _ int) historyRecordResponse {
			return historyRecordResponse{
				ID:          rec.ID,
				Kind:        rec.Kind,
				ImagePrefix: rec.ImagePrefix,
				Prompt:      rec.Prompt,
				Description: rec.Description,
				ImageURL:    rec.ImageURL,
				CreatedAt:   rec.CreatedAt,
			}
		})

		c.JSON(http.StatusOK, gin.H{"records": resp})
	}
}
