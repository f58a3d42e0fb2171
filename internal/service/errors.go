// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-secure-url/internal/validators"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)

// Secured entity errors.
var (
	// ErrUnauthenticated is returned when an operation that needs an owner is
	// called without one.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the caller does not own the entity.
	ErrForbidden = errors.New("secured entity belongs to another user")

	// ErrSecuredEntityNotFound is returned for unknown entity ids.
	ErrSecuredEntityNotFound = errors.New("secured entity not found")

	// ErrMissingPassword is returned when an access attempt carries no password.
	ErrMissingPassword = validators.ErrMissingPassword

	// ErrPasswordMismatch is returned when the submitted password differs from
	// the derived one.
	ErrPasswordMismatch = errors.New("password do not match")

	// ErrSecuredEntityExpired is returned when the access window has closed.
	ErrSecuredEntityExpired = errors.New("secured entity is no longer available")

	// ErrAccessNotRecorded is returned when a granted access could not be
	// written to the access log. The target is withheld in that case.
	ErrAccessNotRecorded = errors.New("access could not be recorded")

	ErrNoURLOrFileProvided    = validators.ErrNoURLOrFileProvided
	ErrBothURLAndFileProvided = validators.ErrBothURLAndFileProvided
	ErrInvalidURL             = validators.ErrInvalidURL
	ErrEmptyFile              = validators.ErrEmptyFile
)
