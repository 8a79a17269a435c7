package services

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	ErrCiphertextMalformed = errors.New("ciphertext is malformed")
	ErrCiphertextTampered  = errors.New("ciphertext failed authentication")
)

// TokenCipher seals OAuth tokens with NaCl secretbox. The stored form is
// base64(nonce || box).
type TokenCipher struct {
	key [32]byte
}

func NewTokenCipher(key [32]byte) TokenCipherInterface {
	return &TokenCipher{key: key}
}

func (c *TokenCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &c.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *TokenCipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCiphertextMalformed, err)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrCiphertextMalformed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plaintext, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return "", ErrCiphertextTampered
	}
	return string(plaintext), nil
}
