package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/logger"
)

// Storages bundles every repository and the blob backend the services use.
type Storages struct {
	UserRepository          UserRepository
	SecuredEntityRepository SecuredEntityRepository
	AccessLogRepository     AccessLogRepository
	UserAgentRepository     UserAgentRepository
	BlobStorage             BlobStorage

	// Media serves locally stored files. Nil for remote backends.
	Media http.Handler

	db *DB
}

// NewStorages connects to the database, applies migrations and builds the
// configured blob backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	storages := &Storages{
		UserRepository:          NewUserRepository(db, log),
		SecuredEntityRepository: NewSecuredEntityRepository(db, log),
		AccessLogRepository:     NewAccessLogRepository(db, log),
		UserAgentRepository:     NewUserAgentRepository(db, log),
		db:                      db,
	}

	switch cfg.Files.Backend {
	case config.BackendS3:
		storages.BlobStorage, err = NewS3BlobStorage(ctx, cfg.S3, log)
	default:
		storages.BlobStorage, storages.Media, err = NewLocalBlobStorage(cfg.Files.MediaDir, cfg.Files.MediaURL, log)
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	return storages, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
