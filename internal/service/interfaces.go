package service

import (
	"context"

	"github.com/MKhiriev/go-secure-url/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=SecuredEntityServiceWrapper

// AuthService manages accounts and the tokens that identify them.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SecuredEntityService is the owner-facing side of secured entities.
// Every method except Create requires the caller to own the entity.
type SecuredEntityService interface {
	// Create stores a new link or file entity for owner and returns it with
	// its freshly derived password.
	Create(ctx context.Context, owner int64, request models.CreateSecuredEntityRequest) (models.SecuredEntityResponse, error)

	// List returns owner's entities, newest first.
	List(ctx context.Context, owner int64) ([]models.SecuredEntityResponse, error)

	Get(ctx context.Context, owner int64, id string) (models.SecuredEntityResponse, error)

	// RegeneratePassword rotates the salt, invalidating the old password.
	RegeneratePassword(ctx context.Context, owner int64, id string) (models.SecuredEntityResponse, error)
}

// AccessService is the visitor-facing gate. It does not look at ownership.
type AccessService interface {
	// Access checks the password and the access window of entity id and, on
	// success, records the access and returns the redirect target.
	Access(ctx context.Context, id string, request models.AccessRequest) (models.AccessGrant, error)

	// Exists reports ErrSecuredEntityNotFound for unknown ids so that a
	// prompt page can 404 before asking for a password.
	Exists(ctx context.Context, id string) error
}

// StatsService aggregates the access log.
type StatsService interface {
	Stats(ctx context.Context, owner int64) (models.Stats, error)
}

// UserAgentService records the User-Agent of authenticated requests.
type UserAgentService interface {
	Record(ctx context.Context, userID int64, userAgent string)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SecuredEntityServiceWrapper defines middleware composition for
// SecuredEntityService. Implementations wrap an existing service to add
// behavior such as validation.
type SecuredEntityServiceWrapper interface {
	Wrap(SecuredEntityService) SecuredEntityService
}
