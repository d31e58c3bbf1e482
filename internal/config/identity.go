package config

import (
	"fmt"
	"os"
)

const (
	EnvIdentityIssuer   = "LUMIDERM_IDENTITY_ISSUER"
	EnvIdentityAudience = "LUMIDERM_IDENTITY_AUDIENCE"
)

// IdentityConfig holds OIDC bearer verification settings.
type IdentityConfig struct {
	Issuer   string `toml:"issuer"`
	Audience string `toml:"audience"`
}

// Finalize applies environment variable overrides and validation.
func (c *IdentityConfig) Finalize() error {
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *IdentityConfig) Merge(overlay *IdentityConfig) {
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
	if overlay.Audience != "" {
		c.Audience = overlay.Audience
	}
}

func (c *IdentityConfig) loadEnv() {
	if v := os.Getenv(EnvIdentityIssuer); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv(EnvIdentityAudience); v != "" {
		c.Audience = v
	}
}

func (c *IdentityConfig) validate() error {
	if c.Issuer == "" {
		return fmt.Errorf("issuer required")
	}
	if c.Audience == "" {
		return fmt.Errorf("audience required")
	}
	return nil
}
