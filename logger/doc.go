// Package logger provides structured logging for credseal using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers. Command output owns stdout, so the default
// destination is stderr.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("credentials")
//	log.Debug("login sealed", logger.Fields(logger.FieldAlgorithm, alg))
//
// Callers must never pass plaintext passwords or ciphertext as fields.
package logger
