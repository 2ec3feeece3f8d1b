package ports

import (
	"context"

	"pronet-api/internal/domain/media"
)

// AssetStore persists asset bytes under immutable names, namespaced by
// purpose. Put never rebinds an existing name and never exposes a
// partially written payload; implementations report
// media.ErrAlreadyExists, media.ErrNotFound and media.ErrWriteFailure.
type AssetStore interface {
	Put(ctx context.Context, purpose media.Purpose, name string, data []byte) error
	Get(ctx context.Context, purpose media.Purpose, name string) ([]byte, error)
	Delete(ctx context.Context, purpose media.Purpose, name string) error
}
