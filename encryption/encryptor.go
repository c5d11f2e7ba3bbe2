package encryption

import (
	"errors"
	"fmt"
)

// Encryptor defines the interface for symmetric encryption and decryption.
// Implementations are immutable after construction and safe for concurrent use.
type Encryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// Algorithm represents supported encryption algorithms.
type Algorithm string

const (
	// AlgorithmAESCBCSalted is OpenSSL-compatible passphrase encryption:
	// AES-256-CBC keyed through EVP_BytesToKey(MD5) with a random salt (default).
	AlgorithmAESCBCSalted Algorithm = "aes-256-cbc-salted"

	// AlgorithmAESGCM is AES-256-GCM (authenticated).
	AlgorithmAESGCM Algorithm = "aes-256-gcm"

	// AlgorithmChaCha20 is ChaCha20-Poly1305 (authenticated, fast on CPUs without AES-NI).
	AlgorithmChaCha20 Algorithm = "chacha20-poly1305"
)

// Algorithms lists every algorithm New accepts.
var Algorithms = []Algorithm{AlgorithmAESCBCSalted, AlgorithmAESGCM, AlgorithmChaCha20}

var (
	// ErrMissingKey is returned when an encryptor is built without a secret key.
	ErrMissingKey = errors.New("encryption: secret key is required")
	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("encryption: unsupported algorithm")
	// ErrMalformedCiphertext is returned when input is not valid ciphertext framing.
	ErrMalformedCiphertext = errors.New("encryption: malformed ciphertext")
	// ErrDecrypt is returned by authenticated algorithms when the ciphertext
	// does not verify under the configured key.
	ErrDecrypt = errors.New("encryption: decryption failed")
)

// Option configures the encryption service.
type Option func(*options)

type options struct {
	algorithm Algorithm
}

// WithAlgorithm selects the encryption algorithm (default: AES-256-CBC salted).
func WithAlgorithm(alg Algorithm) Option {
	return func(o *options) { o.algorithm = alg }
}

// New creates an Encryptor with the given key and options.
// Default algorithm is AES-256-CBC with an OpenSSL salt header. Use
// WithAlgorithm to select one of the authenticated modes.
func New(key string, opts ...Option) (Encryptor, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	o := &options{algorithm: AlgorithmAESCBCSalted}
	for _, opt := range opts {
		opt(o)
	}

	switch o.algorithm {
	case AlgorithmAESCBCSalted, "":
		return NewPasswordCipher(key)
	case AlgorithmAESGCM:
		return NewService(key)
	case AlgorithmChaCha20:
		return NewChaCha20(key)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, o.algorithm)
	}
}
