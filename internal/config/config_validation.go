// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Supported values of [DB.Driver] and [Files.Backend].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"

	FilesBackendLocal = "local"
	FilesBackendS3    = "s3"
)

// DriverName returns the configured driver or, when empty, derives it from
// the DSN: postgres:// and postgresql:// URLs and key=value strings with a
// host select pgx, everything else selects sqlite3.
func (db DB) DriverName() string {
	if db.Driver != "" {
		return db.Driver
	}

	dsn := strings.ToLower(db.DSN)
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.Contains(dsn, "host="):
		return DriverPostgres
	default:
		return DriverSQLite
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and positive token duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if driver := cfg.Storage.DB.DriverName(); driver != DriverPostgres && driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported database driver %q", ErrInvalidStorageConfigs, driver)
	}

	files := cfg.Storage.Files
	switch files.Backend {
	case FilesBackendLocal:
		if files.UploadsDir == "" {
			return fmt.Errorf("%w: empty uploads directory", ErrInvalidStorageConfigs)
		}
	case FilesBackendS3:
		if files.S3.Bucket == "" || files.S3.Region == "" {
			return fmt.Errorf("%w: s3 backend requires bucket and region", ErrInvalidStorageConfigs)
		}
		if (files.S3.AccessKey == "") != (files.S3.SecretKey == "") {
			return fmt.Errorf("%w: s3 access key and secret key must be set together", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported files backend %q", ErrInvalidStorageConfigs, files.Backend)
	}
	if files.PublicBaseURL == "" || files.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: public base URL and positive max upload size are required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: listen address and positive request timeout are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.AuthRateLimit < 0 || (cfg.Server.AuthRateLimit > 0 && cfg.Server.AuthRateWindow <= 0) {
		return fmt.Errorf("%w: invalid auth rate limit", ErrInvalidServerConfigs)
	}

	return nil
}
