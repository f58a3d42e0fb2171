// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of go-secure-url.
//
// Every invocation runs one subcommand (register, login, create, list, get,
// regenerate, access, stats, version). Owner subcommands authenticate with
// -login/-password, falling back to the configured credentials and finally
// to an interactive masked prompt.
package client
