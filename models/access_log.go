// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccessLogEntry records one successful access to a secured entity.
// Entries are append-only.
type AccessLogEntry struct {
	ID              int64     `json:"id"`
	SecuredEntityID string    `json:"secured_entity"`
	Created         time.Time `json:"created"`
}

// TableName returns the name of the database table
// associated with the AccessLogEntry model.
func (a AccessLogEntry) TableName() string {
	return "secured_entity_access_logs"
}
