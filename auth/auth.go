// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidState     = errors.New("invalid oauth state")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// signature computes the HMAC-SHA256 of value keyed by secret
func signature(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(value))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding so the result is cookie-safe
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// Sign appends an HMAC signature to value: "value.signature"
func Sign(value, secret string) string {
	return value + "." + signature(value, secret)
}

// Unsign verifies a value produced by Sign and returns the original value
func Unsign(signed, secret string) (string, error) {
	i := strings.LastIndexByte(signed, '.')
	if i <= 0 {
		return "", ErrInvalidSignature
	}
	value, sig := signed[:i], signed[i+1:]
	if !hmac.Equal([]byte(sig), []byte(signature(value, secret))) {
		return "", ErrInvalidSignature
	}
	return value, nil
}

// GenerateState creates a random OAuth state parameter
func GenerateState() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate oauth state: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateState checks the state returned by the provider against the one
// stored before the redirect
func ValidateState(expected, got string) error {
	if expected == "" || !hmac.Equal([]byte(expected), []byte(got)) {
		return ErrInvalidState
	}
	return nil
}
