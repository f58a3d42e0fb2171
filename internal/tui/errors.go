// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// HumanizeError replaces network failures with a short hint and returns any
// other error text unchanged.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unavailable"
	}

	return err.Error()
}

// RenderError formats err for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("error: " + HumanizeError(err))
}
