// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the merged [StructuredConfig] is usable before any
// component is started.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.DefaultPageSize < 0 || cfg.App.MaxPageSize < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.App.MaxPageSize > 0 && cfg.App.DefaultPageSize > cfg.App.MaxPageSize {
		return ErrInvalidAppConfigs
	}
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Cache.RedisAddress != "" && cfg.Storage.Cache.TTL <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.TokenSignKey != "" && (cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.Operator == "") {
		return ErrInvalidAppConfigs
	}

	return nil
}
