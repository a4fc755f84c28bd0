package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// ParseEncryptionKey decodes a base64-encoded 32-byte key.
func ParseEncryptionKey(keyBase64 string) ([]byte, error) {
	if keyBase64 == "" {
		return nil, errors.New("ENCRYPTION_KEY environment variable not set")
	}

	keyBytes, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, errors.New("ENCRYPTION_KEY must be base64-encoded")
	}

	// Key must be 32 bytes for AES-256
	if len(keyBytes) != 32 {
		return nil, errors.New("ENCRYPTION_KEY must decode to exactly 32 bytes (256 bits)")
	}

	return keyBytes, nil
}

// Cipher seals and opens blobs with AES-256-GCM. The nonce is prepended to the ciphertext.
type Cipher struct {
	gcm cipher.AEAD
}

func NewCipher(keyBase64 string) (*Cipher, error) {
	key, err := ParseEncryptionKey(keyBase64)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &Cipher{gcm: gcm}, nil
}

// Seal encrypts plaintext
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return c.gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts data produced by Seal
func (c *Cipher) Open(data []byte) ([]byte, error) {
	nonceSize := c.gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	return c.gcm.Open(nil, nonce, ciphertext, nil)
}
