// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-secure-url/internal/adapter"
	"github.com/MKhiriev/go-secure-url/internal/app"
	"github.com/MKhiriev/go-secure-url/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case strings.Contains(msg, app.MsgPasswordMismatch):
			return ErrPasswordMismatch
		case strings.Contains(msg, app.MsgFieldRequired):
			return ErrMissingPassword
		case strings.Contains(msg, app.MsgNoLongerAvailable):
			return ErrSecuredEntityExpired
		case strings.Contains(msg, app.MsgURLOrFileRequired):
			return ErrNoURLOrFileProvided
		case strings.Contains(msg, app.MsgURLAndFileExclusive):
			return ErrBothURLAndFileProvided
		case strings.Contains(msg, app.MsgInvalidURL):
			return ErrInvalidURL
		case strings.Contains(msg, app.MsgEmptyFile):
			return ErrEmptyFile
		case strings.Contains(msg, app.MsgInvalidDataProvided):
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch {
		case strings.Contains(msg, app.MsgInvalidLoginPassword):
			return ErrWrongPassword
		case strings.Contains(msg, app.MsgTokenIsExpiredOrInvalid):
			return ErrTokenIsExpiredOrInvalid
		case strings.Contains(msg, app.MsgTokenIsExpired):
			return ErrTokenIsExpired
		}
		return ErrUnauthenticated

	case errors.Is(err, adapter.ErrForbidden):
		return ErrForbidden

	case errors.Is(err, adapter.ErrNotFound):
		return ErrSecuredEntityNotFound

	case errors.Is(err, adapter.ErrConflict):
		if strings.Contains(msg, app.MsgLoginAlreadyExists) {
			return store.ErrLoginAlreadyExists
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
