package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/dskvich/image-api/pkg/poller"
)

type imageGenerator interface {
	CreatePrediction(ctx context.Context, imageB64, prompt string) (string, error)
	GetPrediction(ctx context.Context, id string) (domain.JobStatus, string, error)
}

type generateRequest struct {
	Image  string `json:"image" binding:"required"`
	Prompt string `json:"prompt" binding:"required"`
}

// Generate submits an image-generation job, waits for it to finish and
// returns the output URL. The wait runs on the request context, so a caller
// disconnect stops the polling.
func Generate(generator imageGenerator, history historySaver, p poller.Poller, imagePrefixLen int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image and prompt are required"})
			return
		}

		ctx := c.Request.Context()

		id, err := generator.CreatePrediction(ctx, req.Image, req.Prompt)
		if err != nil {
			respondError(c, err)
			return
		}

		imageURL, err := p.Wait(ctx, func(ctx context.Context) (domain.JobStatus, string, error) {
			return generator.GetPrediction(ctx, id)
		})
		if err != nil {
			respondError(c, err)
			return
		}

		rec := &domain.HistoryRecord{
			Kind:        domain.RecordKindGeneration,
			ImagePrefix: domain.TruncateImage(req.Image, imagePrefixLen),
			Prompt:      req.Prompt,
			ImageURL:    imageURL,
		}
		if err := history.Save(ctx, rec); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
	}
}
