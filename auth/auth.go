// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

const bearerPrefix = "Bearer "

// HashIP creates a one-way fingerprint of an IP address.
// Returns the full SHA-256 digest as 64 lowercase hex chars.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}

// BearerToken extracts the credential from an Authorization header value
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimPrefix(header, bearerPrefix), true
}

// Authorize reports whether the presented credential matches the configured
// secret. An empty secret denies everything, including an empty credential.
func Authorize(presented, secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}

// AuthorizeHeader applies Authorize to a raw Authorization header
func AuthorizeHeader(header, secret string) bool {
	token, ok := BearerToken(header)
	if !ok {
		return false
	}
	return Authorize(token, secret)
}
