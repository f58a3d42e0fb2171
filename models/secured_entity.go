// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SecuredEntityType discriminates what a secured entity points at.
// The string values are persisted and used as keys in stats responses.
type SecuredEntityType string

const (
	// LinkType marks an entity that redirects to an external URL.
	LinkType SecuredEntityType = "links"
	// FileType marks an entity that serves an uploaded file.
	FileType SecuredEntityType = "files"
)

// SecuredEntity is a resource (link or file) hidden behind a generated
// password and a time-limited access window.
//
// Exactly one of URL and File is non-nil. Type mirrors that choice and is
// stored redundantly because the stats aggregation groups by it.
type SecuredEntity struct {
	// ID is a random UUID used both as primary key and as the unguessable
	// path segment of the detail and access URLs.
	ID string `json:"id"`

	// UserID references the owning account. It becomes nil when the owner
	// account is deleted; the entity itself survives.
	UserID *int64 `json:"-"`

	// Type is either LinkType or FileType.
	Type SecuredEntityType `json:"type"`

	// URL is the external link for LinkType entities.
	URL *string `json:"-"`

	// File is the blob storage key for FileType entities.
	File *string `json:"-"`

	// PasswordSalt is the material the public password is derived from.
	// Rotating it invalidates the previous password. Never exposed.
	PasswordSalt string `json:"-"`

	// Created is the creation timestamp (UTC) and the anchor of the
	// accessibility window.
	Created time.Time `json:"created"`
}

// ResolveType derives the entity type from the populated resource field.
func (e SecuredEntity) ResolveType() SecuredEntityType {
	if e.URL != nil && *e.URL != "" {
		return LinkType
	}
	return FileType
}

// IsOwnedBy reports whether the entity is still attached to userID.
func (e SecuredEntity) IsOwnedBy(userID int64) bool {
	return e.UserID != nil && *e.UserID == userID
}

// TableName returns the name of the database table
// associated with the SecuredEntity model.
func (e SecuredEntity) TableName() string {
	return "secured_entities"
}

// SecuredEntityResponse is the owner-facing representation of an entity.
// It carries the derived password, so it must only be sent to the owner.
type SecuredEntityResponse struct {
	ID           string            `json:"id"`
	Type         SecuredEntityType `json:"type"`
	Created      time.Time         `json:"created"`
	Password     string            `json:"password"`
	IsAccessible bool              `json:"is_accessible"`
	AccessURL    string            `json:"access_url"`

	// Accesses lists successful accesses, most recent first. Only the
	// single-entity view fills it.
	Accesses []time.Time `json:"accesses,omitempty"`
}
