package encryption

import (
	"fmt"

	"github.com/kbukum/credseal/validation"
)

// Config contains the shared secret used to obscure passwords.
type Config struct {
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key" json:"secret_key" validate:"required"`
	Algorithm string `yaml:"algorithm" mapstructure:"algorithm" json:"algorithm" validate:"oneof=aes-256-cbc-salted aes-256-gcm chacha20-poly1305"`
}

// ApplyDefaults applies default values to encryption configuration.
func (c *Config) ApplyDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = string(AlgorithmAESCBCSalted)
	}
}

// Validate validates encryption configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return fmt.Errorf("encryption: %w", err)
	}
	return nil
}

// NewFromConfig builds the Encryptor described by cfg. Defaults are applied
// to a copy, so cfg itself is left untouched.
func NewFromConfig(cfg Config) (Encryptor, error) {
	cfg.ApplyDefaults()
	if cfg.SecretKey == "" {
		return nil, ErrMissingKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(cfg.SecretKey, WithAlgorithm(Algorithm(cfg.Algorithm)))
}
