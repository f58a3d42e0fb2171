package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/crypto"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/store"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/internal/validators"
	"github.com/MKhiriev/go-secure-url/models"
)

type accessService struct {
	entities   store.SecuredEntityRepository
	accessLogs store.AccessLogRepository
	blobs      store.BlobStorage
	deriver    crypto.PasswordDeriver
	validator  validators.Validator

	window time.Duration
	now    func() time.Time

	logger *logger.Logger
}

// NewAccessService builds the visitor-facing access gate.
func NewAccessService(
	entities store.SecuredEntityRepository,
	accessLogs store.AccessLogRepository,
	blobs store.BlobStorage,
	deriver crypto.PasswordDeriver,
	cfg config.App,
	logger *logger.Logger,
) AccessService {
	return &accessService{
		entities:   entities,
		accessLogs: accessLogs,
		blobs:      blobs,
		deriver:    deriver,
		validator:  validators.NewSecuredEntityValidator(),
		window:     cfg.AccessWindow,
		now:        time.Now,
		logger:     logger,
	}
}

// Access runs the checks in a fixed order and returns the first failure:
// unknown id, missing password, wrong password, closed window. Every
// successful call appends exactly one access log entry.
func (a *accessService) Access(ctx context.Context, id string, request models.AccessRequest) (models.AccessGrant, error) {
	log := logger.FromContext(ctx)

	entity, err := a.load(ctx, id)
	if err != nil {
		return models.AccessGrant{}, err
	}

	if request.Password != nil {
		trimmed := strings.TrimSpace(*request.Password)
		request.Password = &trimmed
	}
	if err = a.validator.Validate(ctx, request, validators.FieldPassword); err != nil {
		return models.AccessGrant{}, ErrMissingPassword
	}

	expected := a.deriver.DerivePassword(entity.PasswordSalt, entity.ID)
	if !utils.EqualStrings(expected, *request.Password) {
		log.Debug().Str("id", id).Msg("password mismatch")
		return models.AccessGrant{}, ErrPasswordMismatch
	}

	now := a.now().UTC()
	if !IsAccessible(entity.Created, now, a.window) {
		log.Debug().Str("id", id).Time("created", entity.Created).Msg("access window closed")
		return models.AccessGrant{}, ErrSecuredEntityExpired
	}

	target, err := a.target(ctx, entity)
	if err != nil {
		return models.AccessGrant{}, err
	}

	if _, err = a.accessLogs.Append(ctx, entity.ID, now); err != nil {
		log.Err(err).Str("func", "accessService.Access").Str("id", id).Msg("error writing access log")
		return models.AccessGrant{}, fmt.Errorf("%w: %w", ErrAccessNotRecorded, err)
	}

	log.Info().Str("id", id).Str("type", string(entity.Type)).Msg("access granted")

	return models.AccessGrant{Target: target}, nil
}

func (a *accessService) Exists(ctx context.Context, id string) error {
	_, err := a.load(ctx, id)
	return err
}

func (a *accessService) load(ctx context.Context, id string) (models.SecuredEntity, error) {
	entity, err := a.entities.Get(ctx, id)
	if errors.Is(err, store.ErrSecuredEntityNotFound) {
		return models.SecuredEntity{}, ErrSecuredEntityNotFound
	}
	if err != nil {
		return models.SecuredEntity{}, fmt.Errorf("get secured entity: %w", err)
	}

	return entity, nil
}

// target resolves where the visitor goes: the stored url for links, a blob
// locator for files.
func (a *accessService) target(ctx context.Context, entity models.SecuredEntity) (string, error) {
	if entity.Type == models.LinkType && entity.URL != nil {
		return *entity.URL, nil
	}

	if entity.File == nil {
		return "", fmt.Errorf("secured entity %s has no target", entity.ID)
	}

	locator, err := a.blobs.URL(ctx, *entity.File)
	if err != nil {
		return "", fmt.Errorf("resolve file url: %w", err)
	}

	return locator, nil
}
