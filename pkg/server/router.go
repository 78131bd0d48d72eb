package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/dskvich/image-api/pkg/poller"
)

// 20 MB leaves room for a base64-encoded phone photo plus JSON framing.
const defaultMaxBodyBytes = 20 << 20

type historyRepository interface {
	Save(ctx context.Context, rec *domain.HistoryRecord) error
	List(ctx context.Context, limit int) ([]domain.HistoryRecord, error)
}

type Config struct {
	ImagePrefixLen int
	Poller         poller.Poller
}

func NewRouter(
	cfg Config,
	describer imageDescriber,
	generator imageGenerator,
	history historyRepository,
	db databasePinger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), cors(), bodyLimit(defaultMaxBodyBytes))

	api := r.Group("/api")
	api.POST("/describe", Describe(describer, history, cfg.ImagePrefixLen))
	api.POST("/generate", Generate(generator, history, cfg.Poller, cfg.ImagePrefixLen))
	api.GET("/history", History(history))
	api.GET("/health", Health(db))

	return r
}
