// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "net/url"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.ChatRateLimit < 0 || cfg.Server.ChatBurst < 0 {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.MaxAttempts < 1 || cfg.Adapter.InferenceURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.WarmupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL != "" {
		if u, err := url.Parse(cfg.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidClientConfigs
		}
	}

	if cfg.ReplyDelay < 0 || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
