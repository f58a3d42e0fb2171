// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto derives the access passwords of secured entities.
package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-secure-url/internal/utils"
)

const (
	// SaltLength is the length of a stored password salt in hex characters.
	SaltLength = 32
	// PasswordLength is the length of a derived password.
	PasswordLength = 12

	nonceSize = 16
)

type passwordDeriver struct {
	secretKey string
	now       func() time.Time
	random    func([]byte) (int, error)
}

// NewPasswordDeriver returns a PasswordDeriver keyed by secretKey.
func NewPasswordDeriver(secretKey string) PasswordDeriver {
	return &passwordDeriver{
		secretKey: secretKey,
		now:       time.Now,
		random:    rand.Read,
	}
}

// DeriveSalt computes HMAC-SHA256(secretKey, now|created|nonce) and keeps the
// first SaltLength hex characters.
func (d *passwordDeriver) DeriveSalt(created time.Time) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := d.random(nonce); err != nil {
		return "", fmt.Errorf("error reading random nonce: %w", err)
	}

	material := strconv.FormatInt(d.now().UnixNano(), 10) + "|" +
		strconv.FormatInt(created.UTC().UnixNano(), 10) + "|" +
		hex.EncodeToString(nonce)

	return utils.HashString(material, d.secretKey)[:SaltLength], nil
}

// DerivePassword returns the first PasswordLength hex characters of
// SHA-256(salt + "-" + id).
func (d *passwordDeriver) DerivePassword(salt, id string) string {
	return utils.SHA256Hex(salt + "-" + id)[:PasswordLength]
}
