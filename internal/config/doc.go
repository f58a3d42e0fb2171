// Package config provides configuration loading, merging, and validation
// facilities for the secure-url server and its CLI client.
//
// Configuration is assembled from multiple sources. Sources are merged with
// [mergo.Merge] without override, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags (server only)
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
