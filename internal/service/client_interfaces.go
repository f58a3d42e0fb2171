package service

import (
	"context"

	"github.com/MKhiriev/go-secure-url/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration and
// authentication against the remote server.
type ClientAuthService interface {
	// Register creates a new account and keeps the issued token for
	// subsequent calls.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and keeps the issued token for subsequent calls.
	Login(ctx context.Context, user models.User) (models.Token, error)
}

// ClientSecuredEntityService defines the client-side contract for managing
// secured entities. Every call except Access requires a prior Login.
type ClientSecuredEntityService interface {
	CreateLink(ctx context.Context, link string) (models.SecuredEntityResponse, error)

	// CreateFile uploads the file at path.
	CreateFile(ctx context.Context, path string) (models.SecuredEntityResponse, error)

	List(ctx context.Context) ([]models.SecuredEntityResponse, error)
	Get(ctx context.Context, id string) (models.SecuredEntityResponse, error)
	RegeneratePassword(ctx context.Context, id string) (models.SecuredEntityResponse, error)
	Access(ctx context.Context, id, password string) (models.AccessGrant, error)
	Stats(ctx context.Context) (models.Stats, error)
	Version(ctx context.Context) (string, error)
}
