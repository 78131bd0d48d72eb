package domain

import (
	"time"

	"github.com/uptrace/bun"
)

type RecordKind string

const (
	RecordKindDescription RecordKind = "description"
	RecordKindGeneration  RecordKind = "generation"
)

// DefaultImagePrefixLen bounds how much of the client's encoded image is
// kept on a history record. Enough for traceability, never the full payload.
const DefaultImagePrefixLen = 100

// HistoryRecord is an append-only log entry for a handled request. Records
// are written once and never updated or deleted.
type HistoryRecord struct {
	bun.BaseModel `bun:"table:history_records,alias:hr"`

	ID          int64      `bun:"id,pk,autoincrement"`
	Kind        RecordKind `bun:"kind,notnull"`
	ImagePrefix string     `bun:"image_prefix"`
	Prompt      string     `bun:"prompt,nullzero"`
	Description string     `bun:"description,nullzero"`
	ImageURL    string     `bun:"image_url,nullzero"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// TruncateImage returns at most n leading bytes of the encoded image.
func TruncateImage(image string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(image) <= n {
		return image
	}
	return image[:n]
}
