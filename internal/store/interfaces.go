package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-secure-url/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user (Login, PasswordHash) and returns it with
	// UserID and CreatedAt populated. Duplicate logins yield
	// ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns ErrNoUserWasFound when no account matches.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// SecuredEntityRepository persists secured entities.
type SecuredEntityRepository interface {
	Create(ctx context.Context, entity models.SecuredEntity) error

	// Get returns ErrSecuredEntityNotFound for unknown ids.
	Get(ctx context.Context, id string) (models.SecuredEntity, error)

	// ListByOwner returns the owner's entities, newest first.
	ListByOwner(ctx context.Context, userID int64) ([]models.SecuredEntity, error)

	// UpdatePasswordSalt replaces only password_salt of one row.
	UpdatePasswordSalt(ctx context.Context, id, salt string) error
}

// AccessLogRepository persists successful accesses. Entries are never
// updated or deleted explicitly.
type AccessLogRepository interface {
	Append(ctx context.Context, securedEntityID string, created time.Time) (models.AccessLogEntry, error)

	// ListByEntity returns entries most recent first.
	ListByEntity(ctx context.Context, securedEntityID string) ([]models.AccessLogEntry, error)

	// Stats counts distinct accessed entities per day and type, limited to
	// entities owned by ownerID.
	Stats(ctx context.Context, ownerID int64) ([]models.StatsRow, error)
}

// UserAgentRepository stores User-Agent values of authenticated requests.
type UserAgentRepository interface {
	Save(ctx context.Context, log models.UserAgentLog) error
}

// BlobStorage keeps uploaded file content addressed by key.
type BlobStorage interface {
	// Save writes content under key.
	Save(ctx context.Context, key string, content io.Reader, size int64, contentType string) error

	// URL returns the locator a visitor is redirected to. It may be a
	// relative path (local backend) or a presigned absolute url (s3).
	URL(ctx context.Context, key string) (string, error)

	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}
