package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-url/internal/validators"
	"github.com/MKhiriev/go-secure-url/models"
)

// SecuredEntityValidationService checks create payloads before they reach
// the wrapped SecuredEntityService. Read operations pass through.
type SecuredEntityValidationService struct {
	inner     SecuredEntityService
	validator validators.Validator
}

func NewSecuredEntityValidationService() SecuredEntityServiceWrapper {
	return &SecuredEntityValidationService{
		validator: validators.NewSecuredEntityValidator(),
	}
}

func (v *SecuredEntityValidationService) Create(ctx context.Context, owner int64, request models.CreateSecuredEntityRequest) (models.SecuredEntityResponse, error) {
	if owner <= 0 {
		return models.SecuredEntityResponse{}, ErrUnauthenticated
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		return models.SecuredEntityResponse{}, fmt.Errorf("error during secured entity validation before saving: %w", err)
	}

	return v.inner.Create(ctx, owner, request)
}

func (v *SecuredEntityValidationService) List(ctx context.Context, owner int64) ([]models.SecuredEntityResponse, error) {
	return v.inner.List(ctx, owner)
}

func (v *SecuredEntityValidationService) Get(ctx context.Context, owner int64, id string) (models.SecuredEntityResponse, error) {
	return v.inner.Get(ctx, owner, id)
}

func (v *SecuredEntityValidationService) RegeneratePassword(ctx context.Context, owner int64, id string) (models.SecuredEntityResponse, error) {
	return v.inner.RegeneratePassword(ctx, owner, id)
}

func (v *SecuredEntityValidationService) Wrap(wrapped SecuredEntityService) SecuredEntityService {
	v.inner = wrapped
	return v
}
