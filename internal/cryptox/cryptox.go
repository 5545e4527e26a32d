// Package cryptox holds the credential primitives shared by the gate and the
// server: the admin-secret fingerprint and the token-signing key derived
// from it. The secret itself never leaves the process that typed it; both
// sides only ever hold the fingerprint.
package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// signingKeyContext salts the key derivation so a leaked signing key cannot
// be replayed as a fingerprint in some other deployment.
const signingKeyContext = "gamefolio/admin-token/v1"

// Fingerprint returns the lowercase hex SHA-256 digest of the secret.
// This is the stored representation the gate compares against.
func Fingerprint(secret []byte) string {
	sum := sha256.Sum256(secret)
	return hex.EncodeToString(sum[:])
}

// DeriveSigningKey derives the 32-byte HMAC key used to sign and verify
// admin tokens from a fingerprint. Both the client gate and the server
// compute this independently from the fingerprint they hold.
func DeriveSigningKey(fingerprint string) []byte {
	return argon2.IDKey([]byte(fingerprint), []byte(signingKeyContext), 1, 64*1024, 4, 32)
}
