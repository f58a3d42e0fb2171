package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-secure-url/internal/logger"
)

// localBlobStorage keeps blobs on the local filesystem under root and serves
// them below urlPrefix.
type localBlobStorage struct {
	root      string
	urlPrefix string
	logger    *logger.Logger
}

// NewLocalBlobStorage creates root if needed and returns a filesystem-backed
// [BlobStorage] together with the handler serving its files.
func NewLocalBlobStorage(root, urlPrefix string, log *logger.Logger) (BlobStorage, http.Handler, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrStoringBlob, err)
	}

	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}

	storage := &localBlobStorage{
		root:      root,
		urlPrefix: urlPrefix,
		logger:    log,
	}

	return storage, http.StripPrefix(urlPrefix, http.FileServer(http.Dir(root))), nil
}

// Save writes content to root/key, creating parent directories.
func (l *localBlobStorage) Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error {
	log := logger.FromContext(ctx)

	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("%w: %w", ErrStoringBlob, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoringBlob, err)
	}
	defer file.Close()

	written, err := io.Copy(file, content)
	if err != nil {
		log.Err(err).Str("func", "localBlobStorage.Save").Str("key", key).Msg("error writing blob")
		return fmt.Errorf("%w: %w", ErrStoringBlob, err)
	}

	log.Debug().
		Str("key", key).
		Int64("size", written).
		Int64("declared_size", size).
		Str("content_type", contentType).
		Msg("blob saved")

	return nil
}

// URL returns urlPrefix+key. The key must exist.
func (l *localBlobStorage) URL(_ context.Context, key string) (string, error) {
	path, err := l.path(key)
	if err != nil {
		return "", err
	}

	if _, err = os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrBlobNotFound
		}
		return "", err
	}

	return l.urlPrefix + key, nil
}

func (l *localBlobStorage) Delete(_ context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (l *localBlobStorage) path(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) {
		return "", ErrInvalidBlobKey
	}

	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", ErrInvalidBlobKey
	}

	return filepath.Join(l.root, cleaned), nil
}
