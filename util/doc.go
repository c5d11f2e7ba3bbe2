// Package util provides small string helpers shared by credseal packages:
// redaction of identifiers for logs, input sanitization and value coalescing.
package util
