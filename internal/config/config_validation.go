// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" || cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: secret key and token sign key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.AccessWindow <= 0 || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: access window and token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}
	if u, err := url.Parse(cfg.Server.PublicURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad public url %q", ErrInvalidServerConfigs, cfg.Server.PublicURL)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Backend {
	case BackendLocal:
		if cfg.Storage.Files.MediaDir == "" {
			return fmt.Errorf("%w: empty media dir", ErrInvalidStorageConfigs)
		}
	case BackendS3:
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("%w: empty s3 bucket", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files backend %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
