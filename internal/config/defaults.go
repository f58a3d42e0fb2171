// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Supported values of [Files.Backend].
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

const defaultMaxUploadSize = 32 << 20

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AccessWindow:  24 * time.Hour,
			TokenIssuer:   "go-secure-url",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
			Files: Files{
				Backend:       BackendLocal,
				MediaDir:      "./media",
				MediaURL:      "/media/",
				MaxUploadSize: defaultMaxUploadSize,
			},
			S3: S3{PresignTTL: 15 * time.Minute},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// complete fills values derived from other fields.
func (cfg *StructuredConfig) complete() {
	if cfg.Server.PublicURL == "" && cfg.Server.HTTPAddress != "" {
		cfg.Server.PublicURL = "http://" + cfg.Server.HTTPAddress
	}
}
