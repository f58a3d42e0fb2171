// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-secure-url server handlers, pages and the CLI client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, rendered next to form fields, or matched by the client
// when it translates server responses back into errors. Keeping them in one
// place ensures consistent wording throughout the API.
package app

// Field keys of JSON error bodies, e.g. {"password": ["..."]}.
const (
	FieldNonField = "non_field_errors"
	FieldURL      = "url"
	FieldFile     = "file"
	FieldPassword = "password"
	FieldLogin    = "login"
)

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned on registration with a taken login.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAuthenticationRequired is returned for protected routes called
	// without credentials.
	MsgAuthenticationRequired = "authentication credentials were not provided"

	// MsgForbidden is returned when the caller does not own the entity.
	MsgForbidden = "you do not have permission to perform this action"

	// MsgNotFound is returned for unknown secured entity ids.
	MsgNotFound = "not found"

	// MsgFileTooLarge is returned when a multipart body exceeds the limit.
	MsgFileTooLarge = "uploaded file is too large"
)

// Form field messages shown to visitors and owners.
const (
	MsgFieldRequired       = "This field is required."
	MsgPasswordMismatch    = "Password do not match."
	MsgNoLongerAvailable   = "Sorry, this secured entity is no longer available."
	MsgURLOrFileRequired   = "You have to provide either url or file."
	MsgURLAndFileExclusive = "You can't provide both url or file."
	MsgInvalidURL          = "Enter a valid URL."
	MsgEmptyFile           = "The submitted file is empty."
)
