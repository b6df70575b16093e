// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFileVars name files holding secrets, for container runtimes that
// mount them instead of exporting them. A file is read only when the
// secret's own variable is unset.
var secretFileVars = []struct {
	name  string
	field func(cfg *StructuredConfig) *string
}{
	{name: "APP_TOKEN_SIGN_KEY_FILE", field: func(cfg *StructuredConfig) *string { return &cfg.App.TokenSignKey }},
	{name: "STORAGE_DB_DATABASE_URI_FILE", field: func(cfg *StructuredConfig) *string { return &cfg.Storage.DB.DSN }},
	{name: "STORAGE_FILES_S3_SECRET_KEY_FILE", field: func(cfg *StructuredConfig) *string { return &cfg.Storage.Files.S3.SecretKey }},
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library, then fills still-empty secrets from their *_FILE variables.
//
// Returns a wrapped error if env.Parse fails or a secret file cannot be read.
func parseEnv(cfg *StructuredConfig) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	for _, secret := range secretFileVars {
		dst := secret.field(cfg)
		file := os.Getenv(secret.name)
		if *dst != "" || file == "" {
			continue
		}

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", secret.name, err)
		}
		*dst = strings.TrimSpace(string(content))
	}

	return nil
}
