package encryption

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // EVP_BytesToKey is defined over MD5
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// saltHeader prefixes every salted ciphertext, as written by `openssl enc`.
	saltHeader = "Salted__"
	saltSize   = 8
	cbcKeySize = 32
)

// PasswordCipher encrypts short secrets such as passwords with a shared
// passphrase. Output is base64("Salted__" || salt || AES-256-CBC ciphertext)
// where key and IV are derived from the passphrase and a fresh random salt
// using OpenSSL's EVP_BytesToKey with MD5. The format is readable by
// `openssl enc -d -aes-256-cbc -md md5` and by CryptoJS passphrase mode.
//
// The mode is not authenticated: decrypting with the wrong key yields an
// empty or garbled string rather than an error.
type PasswordCipher struct {
	passphrase []byte
	random     io.Reader
}

// CipherOption configures a PasswordCipher.
type CipherOption func(*PasswordCipher)

// WithRandom replaces the salt source. Only tests should need this.
func WithRandom(r io.Reader) CipherOption {
	return func(c *PasswordCipher) { c.random = r }
}

// NewPasswordCipher creates a PasswordCipher for the given passphrase.
func NewPasswordCipher(key string, opts ...CipherOption) (*PasswordCipher, error) {
	if key == "" {
		return nil, ErrMissingKey
	}

	c := &PasswordCipher{
		passphrase: []byte(key),
		random:     rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encrypt encrypts plaintext and returns a base64-encoded result.
// Every call uses a new salt, so equal inputs never produce equal outputs.
func (c *PasswordCipher) Encrypt(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, iv := evpBytesToKey(c.passphrase, salt, cbcKeySize, aes.BlockSize)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(saltHeader)+saltSize+len(padded))
	n := copy(out, saltHeader)
	n += copy(out[n:], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[n:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt decrypts a base64-encoded ciphertext produced by Encrypt.
//
// Only malformed framing is reported as an error. When the framing is valid
// but the key is wrong, padding or UTF-8 checks fail and Decrypt returns an
// empty string with a nil error.
func (c *PasswordCipher) Decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrMalformedCiphertext, err)
	}

	headerLen := len(saltHeader) + saltSize
	if len(data) < headerLen+aes.BlockSize || !bytes.HasPrefix(data, []byte(saltHeader)) {
		return "", fmt.Errorf("%w: missing salt header", ErrMalformedCiphertext)
	}
	body := data[headerLen:]
	if len(body)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: length is not a multiple of the block size", ErrMalformedCiphertext)
	}

	key, iv := evpBytesToKey(c.passphrase, data[len(saltHeader):headerLen], cbcKeySize, aes.BlockSize)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, body)

	plain, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok || !utf8.Valid(plain) {
		return "", nil
	}
	return string(plain), nil
}

// evpBytesToKey implements OpenSSL's EVP_BytesToKey with MD5 and a single
// iteration: D_i = MD5(D_{i-1} || passphrase || salt), concatenated until
// keyLen+ivLen bytes are available.
func evpBytesToKey(passphrase, salt []byte, keyLen, ivLen int) (key, iv []byte) {
	var derived, prev []byte
	for len(derived) < keyLen+ivLen {
		h := md5.New() //nolint:gosec
		h.Write(prev)
		h.Write(passphrase)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, bool) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, false
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, false
		}
	}
	return b[:len(b)-n], true
}
