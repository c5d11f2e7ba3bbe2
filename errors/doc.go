// Package errors provides the structured error type shared by credseal
// packages. An AppError carries a machine-readable code, a message that is
// safe to show to an operator, and an optional cause for errors.Is/As.
package errors
