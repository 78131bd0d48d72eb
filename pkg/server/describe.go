package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/dskvich/image-api/pkg/filter"
)

type imageDescriber interface {
	DescribeImage(ctx context.Context, imageB64 string) (string, error)
}

type historySaver interface {
	Save(ctx context.Context, rec *domain.HistoryRecord) error
}

type describeRequest struct {
	Image string `json:"image" binding:"required"`
}

// Describe turns a reference image into a filtered Indonesian description
// and appends a trimmed history record.
func Describe(describer imageDescriber, history historySaver, imagePrefixLen int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req describeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
			return
		}

		ctx := c.Request.Context()

		raw, err := describer.DescribeImage(ctx, req.Image)
		if err != nil {
			respondError(c, err)
			return
		}

		description := filter.Apply(raw)

		rec := &domain.HistoryRecord{
			Kind:        domain.RecordKindDescription,
			ImagePrefix: domain.TruncateImage(req.Image, imagePrefixLen),
			Description: description,
		}
		if err := history.Save(ctx, rec); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}
