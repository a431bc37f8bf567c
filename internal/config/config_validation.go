// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache TTL must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimitRPS > 0 && cfg.Server.RateLimitBurst < 1 {
		return fmt.Errorf("%w: rate limit burst must be at least 1", ErrInvalidServerConfigs)
	}

	return nil
}

func (a App) validate() error {
	if a.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}
	if a.TokenIssuer == "" || a.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and duration are required", ErrInvalidAppConfigs)
	}
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range [%d, %d]",
			ErrInvalidAppConfigs, a.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
