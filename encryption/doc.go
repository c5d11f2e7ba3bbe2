// Package encryption obscures passwords and other short secrets with a
// shared passphrase before they are embedded in request payloads.
//
// The default algorithm writes OpenSSL's salted format (AES-256-CBC, key and
// IV from EVP_BytesToKey/MD5, random 8-byte salt), which is what browser
// clients using CryptoJS passphrase mode emit. AES-256-GCM and
// ChaCha20-Poly1305 are available when wrong-key decryption must fail
// explicitly.
//
// # Usage
//
//	enc, err := encryption.New(cfg.SecretKey)
//	ciphertext, err := enc.Encrypt(password)
//	password, err := enc.Decrypt(ciphertext)
//
//	aead, err := encryption.New(cfg.SecretKey, encryption.WithAlgorithm(encryption.AlgorithmAESGCM))
package encryption
