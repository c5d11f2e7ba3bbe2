package main

import (
	"fmt"

	"github.com/kbukum/credseal/config"
	"github.com/kbukum/credseal/encryption"
	"github.com/kbukum/credseal/observability"
	"github.com/kbukum/credseal/version"
)

const appName = "credseal"

// AppConfig is the configuration root of the credseal command.
//
//	name: credseal
//	logging:
//	  level: warn
//	encryption:
//	  secret_key: ${ENCRYPTION_SECRET_KEY}
//	  algorithm: aes-256-cbc-salted
//	observability:
//	  enabled: false
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Encryption           encryption.Config    `yaml:"encryption" mapstructure:"encryption"`
	Observability        observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills unset fields of every section.
func (c *AppConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = appName
	}
	if c.Version == "" {
		c.Version = version.Get().Short()
	}
	c.ServiceConfig.ApplyDefaults()
	c.Encryption.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate checks every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Encryption.Validate(); err != nil {
		return err
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("observability: %w", err)
	}
	return nil
}
