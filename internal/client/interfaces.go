// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand named by args[0].
	Run(ctx context.Context, args []string) error
}

// PasswordPrompter reads a secret from the user.
type PasswordPrompter interface {
	PromptPassword(label string) (string, error)
}
