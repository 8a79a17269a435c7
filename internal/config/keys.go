package config

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// sessionKeys reads the base64 PEM pair from JWT_PRIVATE_KEY and
// JWT_PUBLIC_KEY. Outside production a missing pair is generated, so every
// restart signs out all sessions.
func (c *Config) sessionKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateB64, publicB64 := os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY")
	if privateB64 == "" || publicB64 == "" {
		if c.IsProduction() {
			return nil, nil, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production")
		}
		slog.Info("generating an ephemeral session signing key")
		return GenerateRSAKeyPair()
	}
	return ParseRSAKeyPair(privateB64, publicB64)
}

// ParseRSAKeyPair decodes base64-wrapped PEM keys. PKCS1 and PKCS8 private
// keys are both accepted.
func ParseRSAKeyPair(privateB64, publicB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privatePEM, err := base64.StdEncoding.DecodeString(strings.TrimSpace(privateB64))
	if err != nil {
		return nil, nil, fmt.Errorf("decode private key: %w", err)
	}
	publicPEM, err := base64.StdEncoding.DecodeString(strings.TrimSpace(publicB64))
	if err != nil {
		return nil, nil, fmt.Errorf("decode public key: %w", err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse private key: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("parse public key: %w", err)
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, errors.New("public key does not belong to the private key")
	}
	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return privateKey, &privateKey.PublicKey, nil
}

// tokenEncryptionKey reads the secretbox key for stored Google tokens from
// TOKEN_ENCRYPTION_KEY. Outside production a missing key is generated.
func (c *Config) tokenEncryptionKey() ([32]byte, error) {
	encoded := os.Getenv("TOKEN_ENCRYPTION_KEY")
	if encoded != "" {
		return ParseEncryptionKey(encoded)
	}

	var key [32]byte
	if c.IsProduction() {
		return key, errors.New("TOKEN_ENCRYPTION_KEY must be set in production")
	}
	slog.Info("generating an ephemeral token encryption key")
	if _, err := rand.Read(key[:]); err != nil {
		return key, fmt.Errorf("failed to generate token encryption key: %w", err)
	}
	return key, nil
}

// ParseEncryptionKey decodes a base64 string into a 32-byte key.
func ParseEncryptionKey(encoded string) ([32]byte, error) {
	var key [32]byte

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return key, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("encryption key must be %d bytes, got %d", len(key), len(raw))
	}

	copy(key[:], raw)
	return key, nil
}
