package ports

import (
	"context"
	"mime/multipart"

	"pronet-api/internal/domain/media"
	"pronet-api/internal/domain/user"
)

type MediaService interface {
	// Upload runs the full ingestion pipeline for one file and returns
	// the manifest of persisted artifacts; on failure nothing persisted
	// by this invocation remains in the store.
	Upload(ctx context.Context, owner user.UUID, purpose media.Purpose, fh *multipart.FileHeader) (*media.UploadManifest, error)
	// Fetch returns a persisted artifact's bytes and content type.
	Fetch(ctx context.Context, purpose media.Purpose, name string) ([]byte, string, error)
	// Discard removes every artifact a manifest names, for callers whose
	// own transaction failed after a successful Upload.
	Discard(ctx context.Context, m *media.UploadManifest)
}
