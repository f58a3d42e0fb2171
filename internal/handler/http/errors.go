// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware and request decoding.
// Callers can match against them with [errors.Is].
var (
	// ErrNoCredentials is returned when a request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header uses an unknown scheme or cannot be split into scheme and value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned for request bodies that cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrRequestTooLarge is returned when a multipart body exceeds the
	// configured upload limit.
	ErrRequestTooLarge = errors.New("request body too large")
)
