// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal pieces of the CLI client: a masked password
// prompt built on Bubble Tea and lipgloss renderers for secured entities and
// access statistics.
package tui
