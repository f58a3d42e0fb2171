// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-secure-url server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secure-url/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-secure-url API. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned bearer token is
	// stored via SetToken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates with login and password. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	// CreateSecuredEntity sends either a JSON url payload or a multipart file
	// upload, depending on which field of request is set.
	CreateSecuredEntity(ctx context.Context, request models.CreateSecuredEntityRequest) (models.SecuredEntityResponse, error)

	ListSecuredEntities(ctx context.Context) ([]models.SecuredEntityResponse, error)
	GetSecuredEntity(ctx context.Context, id string) (models.SecuredEntityResponse, error)
	RegeneratePassword(ctx context.Context, id string) (models.SecuredEntityResponse, error)

	// Access submits a password to the public access gate. It needs no token.
	Access(ctx context.Context, id string, password string) (models.AccessGrant, error)

	Stats(ctx context.Context) (models.Stats, error)
}
