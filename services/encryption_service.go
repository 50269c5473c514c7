package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log"

	"court_filing_app_go/config"

	"golang.org/x/crypto/hkdf"
)

var (
	// ErrInvalidCiphertext indicates the ciphertext is malformed or too short
	ErrInvalidCiphertext = errors.New("invalid ciphertext")
)

// FieldCipher encrypts sensitive document fields at rest with AES-256-GCM.
// Each record gets its own key derived from the master key and the record id
// via HKDF, so a leaked per-record key exposes only that record.
type FieldCipher struct {
	master []byte
}

// Cipher is the global field cipher. Nil means plaintext mode (development).
var Cipher *FieldCipher

// InitializeCipher sets up field encryption from configuration. With no key
// configured, fields are stored in plaintext and a warning is logged.
func InitializeCipher(cfg *config.Config) error {
	if cfg.DataEncryptionKey == "" {
		Cipher = nil
		log.Println("[WARNING] Field encryption disabled (no DATA_ENCRYPTION_KEY). Extracted text will be stored in plaintext.")
		return nil
	}

	key, err := base64.StdEncoding.DecodeString(cfg.DataEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(key) != config.EncryptionKeyLength {
		return fmt.Errorf("encryption key must be %d bytes (got %d)", config.EncryptionKeyLength, len(key))
	}

	Cipher = &FieldCipher{master: key}
	log.Println("Field encryption enabled (AES-256-GCM, per-record derived keys)")
	return nil
}

// NewFieldCipher builds a cipher from a raw 32-byte master key
func NewFieldCipher(master []byte) (*FieldCipher, error) {
	if len(master) != config.EncryptionKeyLength {
		return nil, fmt.Errorf("encryption key must be %d bytes (got %d)", config.EncryptionKeyLength, len(master))
	}
	return &FieldCipher{master: master}, nil
}

// recordKey derives the per-record AES key via HKDF-SHA256 with the record id
// as context info
func (c *FieldCipher) recordKey(recordID string) ([]byte, error) {
	key := make([]byte, config.EncryptionKeyLength)
	kdf := hkdf.New(sha256.New, c.master, nil, []byte("document-field:"+recordID))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive record key: %w", err)
	}
	return key, nil
}

// EncryptField encrypts plaintext for the given record. Returns
// base64-encoded nonce-prefixed ciphertext. A nil cipher passes plaintext
// through unchanged.
func (c *FieldCipher) EncryptField(recordID string, plaintext string) (string, error) {
	if c == nil || plaintext == "" {
		return plaintext, nil
	}

	key, err := c.recordKey(recordID)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	// Random nonce, prepended to the ciphertext
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// DecryptField decrypts a field previously produced by EncryptField. A nil
// cipher passes the stored value through unchanged.
func (c *FieldCipher) DecryptField(recordID string, stored string) (string, error) {
	if c == nil || stored == "" {
		return stored, nil
	}

	data, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	key, err := c.recordKey(recordID)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create GCM: %w", err)
	}

	if len(data) < gcm.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, cipherData := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, cipherData, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

// GenerateEncryptionKey generates a new random 32-byte master key as base64.
// Use this to generate a value for the DATA_ENCRYPTION_KEY environment
// variable.
func GenerateEncryptionKey() (string, error) {
	key := make([]byte, config.EncryptionKeyLength)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}
