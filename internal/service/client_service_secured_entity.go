package service

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-secure-url/internal/adapter"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/validators"
	"github.com/MKhiriev/go-secure-url/models"
)

type clientSecuredEntityService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientSecuredEntityService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSecuredEntityService {
	return &clientSecuredEntityService{
		adapter:   serverAdapter,
		validator: validators.NewSecuredEntityValidator(),
		logger:    logger,
	}
}

// CreateLink validates link locally before sending it, so obviously bad
// input never leaves the machine.
func (c *clientSecuredEntityService) CreateLink(ctx context.Context, link string) (models.SecuredEntityResponse, error) {
	request := models.CreateSecuredEntityRequest{URL: link}
	if err := c.validator.Validate(ctx, request); err != nil {
		return models.SecuredEntityResponse{}, err
	}

	return c.create(ctx, request)
}

func (c *clientSecuredEntityService) CreateFile(ctx context.Context, path string) (models.SecuredEntityResponse, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("stat %s: %w", path, err)
	}

	request := models.CreateSecuredEntityRequest{
		File: &models.Upload{
			Name:        filepath.Base(path),
			Size:        info.Size(),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Content:     file,
		},
	}
	if err = c.validator.Validate(ctx, request); err != nil {
		return models.SecuredEntityResponse{}, err
	}

	return c.create(ctx, request)
}

func (c *clientSecuredEntityService) create(ctx context.Context, request models.CreateSecuredEntityRequest) (models.SecuredEntityResponse, error) {
	entity, err := c.adapter.CreateSecuredEntity(ctx, request)
	if err != nil {
		c.logger.Err(err).Msg("create secured entity failed")
		return models.SecuredEntityResponse{}, mapAdapterError(err)
	}

	return entity, nil
}

func (c *clientSecuredEntityService) List(ctx context.Context) ([]models.SecuredEntityResponse, error) {
	entities, err := c.adapter.ListSecuredEntities(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return entities, nil
}

func (c *clientSecuredEntityService) Get(ctx context.Context, id string) (models.SecuredEntityResponse, error) {
	entity, err := c.adapter.GetSecuredEntity(ctx, id)
	if err != nil {
		return models.SecuredEntityResponse{}, mapAdapterError(err)
	}
	return entity, nil
}

func (c *clientSecuredEntityService) RegeneratePassword(ctx context.Context, id string) (models.SecuredEntityResponse, error) {
	entity, err := c.adapter.RegeneratePassword(ctx, id)
	if err != nil {
		return models.SecuredEntityResponse{}, mapAdapterError(err)
	}
	return entity, nil
}

func (c *clientSecuredEntityService) Access(ctx context.Context, id, password string) (models.AccessGrant, error) {
	grant, err := c.adapter.Access(ctx, id, password)
	if err != nil {
		return models.AccessGrant{}, mapAdapterError(err)
	}
	return grant, nil
}

func (c *clientSecuredEntityService) Stats(ctx context.Context) (models.Stats, error) {
	stats, err := c.adapter.Stats(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return stats, nil
}

func (c *clientSecuredEntityService) Version(ctx context.Context) (string, error) {
	version, err := c.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
