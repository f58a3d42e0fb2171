// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxUserAgentLength bounds the stored User-Agent value.
const MaxUserAgentLength = 256

// UserAgentLog stores the User-Agent of an authenticated request.
type UserAgentLog struct {
	UserID    int64     `json:"user_id"`
	UserAgent string    `json:"user_agent"`
	Created   time.Time `json:"created"`
}

// TableName returns the name of the database table
// associated with the UserAgentLog model.
func (u UserAgentLog) TableName() string {
	return "user_agent_logs"
}
