package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"pronet-api/internal/application/ports"
	"pronet-api/internal/domain/media"
)

// FileSystem is the local-disk asset store: one directory per purpose,
// flat files inside. Writes land in a temp file and are published with
// a hard link, so a reader never observes a truncated payload and an
// existing name is never rebound.
type FileSystem struct {
	log  *zap.Logger
	root string
}

func NewFileSystem(logger *zap.Logger, root string) (*FileSystem, error) {
	for _, p := range []media.Purpose{media.PurposeAvatar, media.PurposePostMedia} {
		if err := os.MkdirAll(filepath.Join(root, string(p)), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir for %s: %w", p, err)
		}
	}

	logger.Info("asset store ready", zap.String("root", root))

	return &FileSystem{log: logger, root: root}, nil
}

var _ ports.AssetStore = (*FileSystem)(nil)

func (fs *FileSystem) path(purpose media.Purpose, name string) string {
	return filepath.Join(fs.root, string(purpose), name)
}

func (fs *FileSystem) Put(ctx context.Context, purpose media.Purpose, name string, data []byte) error {
	if !media.ValidName(name) {
		return fmt.Errorf("%w: %q", media.ErrInvalidName, name)
	}

	final := fs.path(purpose, name)
	if _, err := os.Stat(final); err == nil {
		return fmt.Errorf("%w: %s", media.ErrAlreadyExists, name)
	}

	dir := filepath.Dir(final)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %v", media.ErrWriteFailure, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", media.ErrWriteFailure, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", media.ErrWriteFailure, err)
	}

	// link publishes atomically and fails if the name was taken since
	// the stat above
	if err = os.Link(tmp.Name(), final); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", media.ErrAlreadyExists, name)
		}
		return fmt.Errorf("%w: %v", media.ErrWriteFailure, err)
	}

	return nil
}

func (fs *FileSystem) Get(ctx context.Context, purpose media.Purpose, name string) ([]byte, error) {
	if !media.ValidName(name) {
		return nil, fmt.Errorf("%w: %q", media.ErrInvalidName, name)
	}

	data, err := os.ReadFile(fs.path(purpose, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", media.ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: %v", media.ErrWriteFailure, err)
	}

	return data, nil
}

func (fs *FileSystem) Delete(ctx context.Context, purpose media.Purpose, name string) error {
	if !media.ValidName(name) {
		return fmt.Errorf("%w: %q", media.ErrInvalidName, name)
	}

	if err := os.Remove(fs.path(purpose, name)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", media.ErrNotFound, name)
		}
		return fmt.Errorf("%w: %v", media.ErrWriteFailure, err)
	}

	return nil
}
