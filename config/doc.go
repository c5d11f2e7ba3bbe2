// Package config loads credseal configuration from YAML files, .env files
// and environment variables using Viper.
//
// Precedence, lowest to highest: config file, process environment, .env
// file values not already set in the environment. Environment keys map onto
// nested config keys by splitting on underscores, so ENCRYPTION_SECRET_KEY
// populates encryption.secret_key.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.Load("credseal", &cfg, config.WithConfigFile(path))
package config
