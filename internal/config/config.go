// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-secure-url application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the password derivation
	// secret, the access window and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the blob
	// storage backend used for uploaded files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the CLI client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control password
// derivation, the accessibility window, token lifecycle, and versioning.
type App struct {
	// SecretKey keys the HMAC used to derive password salts. Rotating it does
	// not invalidate existing passwords because salts are persisted.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// AccessWindow is how long a secured entity stays accessible after
	// creation.
	// Env: APP_ACCESS_WINDOW
	AccessWindow time.Duration `env:"ACCESS_WINDOW"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// PublicURL is the externally reachable base URL used to build
	// access_url values (e.g. "https://secure.example.com").
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	S3    S3    `envPrefix:"S3_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver selects the database/sql driver: "pgx" or "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string passed to the driver.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds settings of the blob storage used for uploaded files.
type Files struct {
	// Backend selects the blob storage implementation: "local" or "s3".
	// Env: STORAGE_FILES_BACKEND
	Backend string `env:"BACKEND"`

	// MediaDir is the root directory of the local backend.
	// Env: STORAGE_FILES_MEDIA_DIR
	MediaDir string `env:"MEDIA_DIR"`

	// MediaURL is the URL prefix the local backend serves files under.
	// Env: STORAGE_FILES_MEDIA_URL
	MediaURL string `env:"MEDIA_URL"`

	// MaxUploadSize limits multipart request bodies, in bytes.
	// Env: STORAGE_FILES_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// S3 holds settings of the S3-compatible blob backend.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// PresignTTL is the lifetime of presigned GET urls handed to visitors.
	PresignTTL time.Duration `env:"PRESIGN_TTL"`
}

// Adapter holds the settings the CLI client uses to reach the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Login and Password are optional stored credentials.
	// Env: ADAPTER_LOGIN, ADAPTER_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from environment variables, command-line flags, the optional JSON file and
// defaults, in that priority order.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
