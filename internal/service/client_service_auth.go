package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secure-url/internal/adapter"
	"github.com/MKhiriev/go-secure-url/internal/logger"
	"github.com/MKhiriev/go-secure-url/internal/validators"
	"github.com/MKhiriev/go-secure-url/models"
)

type clientAuthService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:   serverAdapter,
		validator: validators.NewSecuredEntityValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Token, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("login", user.Login).Msg("registration failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return token, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Token, error) {
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("login", user.Login).Msg("login failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return token, nil
}
