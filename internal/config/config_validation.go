package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Missing Gemini keys and an empty database DSN are deliberately not errors:
// the chat service falls back to canned replies and contact persistence
// degrades gracefully, matching the behavior of the deployed site.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Catalog.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.AdminEnabled() && cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// AdminEnabled reports whether the admin endpoints should be mounted.
// They require a shared secret to exchange for a session token.
func (cfg *StructuredConfig) AdminEnabled() bool {
	return cfg.App.AdminToken != ""
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || strings.Contains(cfg.BaseURL, " ") {
		return ErrInvalidClientConfigs
	}

	if cfg.RequestTimeout == 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
