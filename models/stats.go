// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DailyStats counts distinct secured entities accessed on one day, per type.
type DailyStats struct {
	Files int `json:"files"`
	Links int `json:"links"`
}

// Add sets the counter for the given entity type.
func (d *DailyStats) Add(entityType SecuredEntityType, count int) {
	switch entityType {
	case FileType:
		d.Files += count
	case LinkType:
		d.Links += count
	}
}

// Stats maps an ISO date (YYYY-MM-DD) to that day's counters.
type Stats map[string]DailyStats

// StatsRow is a single aggregated row as returned by the storage layer.
type StatsRow struct {
	Day   string
	Type  SecuredEntityType
	Count int
}
