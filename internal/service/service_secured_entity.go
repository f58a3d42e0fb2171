package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-secure-url/internal/config"
	"github.com/MKhiriev/go-secure-url/internal/crypto"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/store"
	"github.com/MKhiriev/go-secure-url/internal/utils"
	"github.com/MKhiriev/go-secure-url/models"
)

// blobKeyPrefix is the storage namespace of uploaded files.
const blobKeyPrefix = "secure_url/files"

// accessPathFormat is the public path of the access gate of one entity.
const accessPathFormat = "/secure-url/secured-entity/%s/access/"

type idGenerator interface {
	Generate() string
}

type securedEntityService struct {
	entities   store.SecuredEntityRepository
	accessLogs store.AccessLogRepository
	blobs      store.BlobStorage
	deriver    crypto.PasswordDeriver
	ids        idGenerator

	window    time.Duration
	publicURL string
	now       func() time.Time

	logger *logger.Logger
}

// NewSecuredEntityService builds the owner-facing entity service. The access
// window and the public base url come from cfg.
func NewSecuredEntityService(
	entities store.SecuredEntityRepository,
	accessLogs store.AccessLogRepository,
	blobs store.BlobStorage,
	deriver crypto.PasswordDeriver,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) SecuredEntityService {
	return &securedEntityService{
		entities:   entities,
		accessLogs: accessLogs,
		blobs:      blobs,
		deriver:    deriver,
		ids:        utils.NewUUIDGenerator(),
		window:     cfg.App.AccessWindow,
		publicURL:  strings.TrimRight(cfg.Server.PublicURL, "/"),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *securedEntityService) Create(ctx context.Context, owner int64, request models.CreateSecuredEntityRequest) (models.SecuredEntityResponse, error) {
	log := logger.FromContext(ctx)

	if owner <= 0 {
		return models.SecuredEntityResponse{}, ErrUnauthenticated
	}

	entity := models.SecuredEntity{
		ID:      s.ids.Generate(),
		UserID:  &owner,
		Created: s.now().UTC(),
	}

	if request.File != nil {
		key := blobKey(s.ids.Generate(), request.File.Name)
		if err := s.blobs.Save(ctx, key, request.File.Content, request.File.Size, request.File.ContentType); err != nil {
			log.Err(err).Str("func", "securedEntityService.Create").Str("key", key).Msg("error saving uploaded file")
			return models.SecuredEntityResponse{}, fmt.Errorf("save uploaded file: %w", err)
		}
		entity.File = &key
	} else {
		link := strings.TrimSpace(request.URL)
		entity.URL = &link
	}
	entity.Type = entity.ResolveType()

	salt, err := s.deriver.DeriveSalt(entity.Created)
	if err != nil {
		s.discardBlob(ctx, entity)
		return models.SecuredEntityResponse{}, fmt.Errorf("derive salt: %w", err)
	}
	entity.PasswordSalt = salt

	if err = s.entities.Create(ctx, entity); err != nil {
		log.Err(err).Str("func", "securedEntityService.Create").Str("id", entity.ID).Msg("error saving secured entity")
		s.discardBlob(ctx, entity)
		return models.SecuredEntityResponse{}, fmt.Errorf("save secured entity: %w", err)
	}

	log.Info().
		Str("id", entity.ID).
		Str("type", string(entity.Type)).
		Int64("user_id", owner).
		Msg("secured entity created")

	return s.toResponse(entity), nil
}

func (s *securedEntityService) List(ctx context.Context, owner int64) ([]models.SecuredEntityResponse, error) {
	if owner <= 0 {
		return nil, ErrUnauthenticated
	}

	entities, err := s.entities.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list secured entities: %w", err)
	}

	responses := make([]models.SecuredEntityResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, s.toResponse(entity))
	}

	return responses, nil
}

func (s *securedEntityService) Get(ctx context.Context, owner int64, id string) (models.SecuredEntityResponse, error) {
	entity, err := s.managed(ctx, owner, id)
	if err != nil {
		return models.SecuredEntityResponse{}, err
	}

	entries, err := s.accessLogs.ListByEntity(ctx, entity.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "securedEntityService.Get").Str("id", id).Msg("error listing access log")
		return models.SecuredEntityResponse{}, fmt.Errorf("list access log: %w", err)
	}

	response := s.toResponse(entity)
	response.Accesses = make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		response.Accesses = append(response.Accesses, entry.Created)
	}

	return response, nil
}

// RegeneratePassword persists a fresh salt; concurrent calls are last write
// wins.
func (s *securedEntityService) RegeneratePassword(ctx context.Context, owner int64, id string) (models.SecuredEntityResponse, error) {
	entity, err := s.managed(ctx, owner, id)
	if err != nil {
		return models.SecuredEntityResponse{}, err
	}

	salt, err := s.deriver.DeriveSalt(entity.Created)
	if err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("derive salt: %w", err)
	}

	if err = s.entities.UpdatePasswordSalt(ctx, id, salt); err != nil {
		if errors.Is(err, store.ErrSecuredEntityNotFound) {
			return models.SecuredEntityResponse{}, ErrSecuredEntityNotFound
		}
		return models.SecuredEntityResponse{}, fmt.Errorf("update password salt: %w", err)
	}
	entity.PasswordSalt = salt

	logger.FromContext(ctx).Info().Str("id", id).Int64("user_id", owner).Msg("password regenerated")

	return s.toResponse(entity), nil
}

// managed loads id and applies the ownership guard.
func (s *securedEntityService) managed(ctx context.Context, owner int64, id string) (models.SecuredEntity, error) {
	if owner <= 0 {
		return models.SecuredEntity{}, ErrUnauthenticated
	}

	entity, err := s.entities.Get(ctx, id)
	if errors.Is(err, store.ErrSecuredEntityNotFound) {
		return models.SecuredEntity{}, ErrSecuredEntityNotFound
	}
	if err != nil {
		return models.SecuredEntity{}, fmt.Errorf("get secured entity: %w", err)
	}

	if !CanManage(entity, owner) {
		logger.FromContext(ctx).Warn().Str("id", id).Int64("user_id", owner).Msg("ownership check failed")
		return models.SecuredEntity{}, ErrForbidden
	}

	return entity, nil
}

func (s *securedEntityService) toResponse(entity models.SecuredEntity) models.SecuredEntityResponse {
	return models.SecuredEntityResponse{
		ID:           entity.ID,
		Type:         entity.Type,
		Created:      entity.Created,
		Password:     s.deriver.DerivePassword(entity.PasswordSalt, entity.ID),
		IsAccessible: IsAccessible(entity.Created, s.now(), s.window),
		AccessURL:    s.publicURL + fmt.Sprintf(accessPathFormat, entity.ID),
	}
}

func (s *securedEntityService) discardBlob(ctx context.Context, entity models.SecuredEntity) {
	if entity.File == nil {
		return
	}
	if err := s.blobs.Delete(ctx, *entity.File); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", *entity.File).Msg("error removing orphaned blob")
	}
}

// blobKey places an upload under its own random directory so that equal
// file names never collide.
func blobKey(dir, name string) string {
	return path.Join(blobKeyPrefix, dir, sanitizeFileName(name))
}

func sanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)

	cleaned = strings.TrimLeft(cleaned, ".")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
