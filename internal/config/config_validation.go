// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "slices"

var knownPolicies = []string{"optimistic", "confirmed"}

// validate checks that the final merged [StructuredConfig] carries everything
// the settings server needs before it starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.AdminLogin == "" || cfg.App.AdminPasswordHash == "" ||
		cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !slices.Contains(knownPolicies, cfg.Editor.SectionsPolicy) ||
		!slices.Contains(knownPolicies, cfg.Editor.SocialMediaPolicy) ||
		cfg.Editor.NotificationTTL <= 0 {
		return ErrInvalidEditorConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
