package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEADCipher encrypts with an authenticated cipher. Output is
// base64(nonce || sealed). Unlike PasswordCipher, a wrong key or a tampered
// ciphertext is reported as ErrDecrypt.
type AEADCipher struct {
	aead      cipher.AEAD
	algorithm Algorithm
}

// NewService creates an AES-256-GCM cipher.
// The key is hashed with SHA-256 to produce a consistent 32-byte AES key.
func NewService(key string) (*AEADCipher, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	block, err := aes.NewCipher(deriveKey(key))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &AEADCipher{aead: gcm, algorithm: AlgorithmAESGCM}, nil
}

// NewChaCha20 creates a ChaCha20-Poly1305 cipher. It performs well on CPUs
// without AES hardware acceleration (ARM devices, older processors).
func NewChaCha20(key string) (*AEADCipher, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	aead, err := chacha20poly1305.New(deriveKey(key))
	if err != nil {
		return nil, fmt.Errorf("create chacha20: %w", err)
	}

	return &AEADCipher{aead: aead, algorithm: AlgorithmChaCha20}, nil
}

// Algorithm reports which AEAD backs the cipher.
func (c *AEADCipher) Algorithm() Algorithm { return c.algorithm }

// Encrypt encrypts plaintext and returns a base64-encoded result.
func (c *AEADCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt decrypts a base64-encoded ciphertext.
func (c *AEADCipher) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedCiphertext, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrMalformedCiphertext)
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	return string(plaintext), nil
}

func deriveKey(key string) []byte {
	sum := sha256.Sum256([]byte(key))
	return sum[:]
}
