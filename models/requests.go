// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// CreateSecuredEntityRequest carries the payload of a create call.
// URL and File are mutually exclusive.
type CreateSecuredEntityRequest struct {
	// URL is the link to secure. Empty means "not provided".
	URL string `json:"url"`

	// File is the uploaded content; nil means "not provided".
	File *Upload `json:"-"`
}

// Upload describes an uploaded file as received by a transport handler.
type Upload struct {
	Name        string
	Size        int64
	ContentType string
	Content     io.Reader
}

// AccessRequest is the payload submitted to the access gate.
// A nil Password means the field was absent from the request.
type AccessRequest struct {
	Password *string `json:"password"`
}

// AccessGrant is the result of a successful access validation.
type AccessGrant struct {
	// Target is the resolved redirect target: the stored URL for links or
	// the blob locator for files.
	Target string `json:"secured_entity"`
}
