package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-nutri-track/internal/config"
	"github.com/MKhiriev/go-nutri-track/internal/logger"
)

// fileBlobStorage keeps food photos on the local filesystem under root.
// It is meant for development and single-node deployments; the HTTP server
// serves the files back under /images/.
type fileBlobStorage struct {
	root          string
	publicBaseURL string
	logger        *logger.Logger
}

func NewFileBlobStorage(cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		log.Err(err).Str("func", "NewFileBlobStorage").Str("dir", cfg.Dir).Msg("failed to create blob directory")
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}

	return &fileBlobStorage{
		root:          cfg.Dir,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        log,
	}, nil
}

// validateBlobKey rejects empty, absolute and parent-escaping keys.
func validateBlobKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return ErrInvalidBlobKey
	}
	if cleaned := path.Clean(key); cleaned != key || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return ErrInvalidBlobKey
	}
	return nil
}

func (f *fileBlobStorage) path(key string) (string, error) {
	if err := validateBlobKey(key); err != nil {
		return "", err
	}
	return filepath.Join(f.root, filepath.FromSlash(key)), nil
}

func (f *fileBlobStorage) Upload(ctx context.Context, key string, data []byte, _ string) (string, error) {
	p, err := f.path(key)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileBlobStorage.Upload").Str("key", key).Msg("failed to create directory")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	// write to a temp file first so readers never see a partial image
	tmp := p + ".tmp"
	if err = os.WriteFile(tmp, data, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileBlobStorage.Upload").Str("key", key).Msg("failed to write file")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if err = os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	return key, nil
}

func (f *fileBlobStorage) Download(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("failed to read image %q: %w", key, err)
	}
	return data, nil
}

func (f *fileBlobStorage) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	return f.publicBaseURL + "/images/" + key
}

// Delete is idempotent: a missing file is not an error.
func (f *fileBlobStorage) Delete(_ context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image %q: %w", key, err)
	}
	return nil
}

// NewBlobStorage selects the blob driver configured in cfg.
func NewBlobStorage(ctx context.Context, cfg config.Blob, log *logger.Logger) (BlobStorage, error) {
	switch cfg.Driver {
	case config.BlobDriverS3:
		return NewS3BlobStorage(ctx, cfg, log)
	case config.BlobDriverFile, "":
		return NewFileBlobStorage(cfg, log)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}
