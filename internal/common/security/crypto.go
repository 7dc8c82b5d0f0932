package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// ErrCipherInvalid reports a payload that failed authenticated decryption,
// e.g. ciphertext produced under a different key. It is distinct from a
// token signature failure, which is raised before decryption is attempted.
var ErrCipherInvalid = errors.New("payload decryption failed")

// PayloadCipher encrypts token payloads with AES-GCM before they are
// signed, so the signed envelope carries ciphertext instead of cleartext
// claims.
type PayloadCipher struct {
	aead cipher.AEAD
}

func NewPayloadCipher(key []byte) (*PayloadCipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("invalid payload encryption key: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to construct AEAD: %w", err)
	}
	return &PayloadCipher{aead: aead}, nil
}

// Encrypt seals plaintext into base64(nonce || ciphertext).
func (c *PayloadCipher) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *PayloadCipher) Decrypt(encoded string) ([]byte, error) {
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrCipherInvalid
	}
	if len(sealed) < c.aead.NonceSize() {
		return nil, ErrCipherInvalid
	}
	nonce, ciphertext := sealed[:c.aead.NonceSize()], sealed[c.aead.NonceSize():]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrCipherInvalid
	}
	return plaintext, nil
}
