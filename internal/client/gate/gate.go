// Package gate implements the admin capability gate: a session-scoped
// privilege flag unlocked by presenting the shared secret. Only a digest of
// the secret is ever compared or retained; the secret itself is wiped.
package gate

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gamefolio/internal/common"
	"github.com/dmitrijs2005/gamefolio/internal/cryptox"
	"github.com/dmitrijs2005/gamefolio/internal/server/auth"
)

// fingerprintFn is a test seam for the digest computation, and the hook that
// lets tests exercise the compute-failure path (the real implementation
// cannot fail).
var fingerprintFn = func(secret []byte) (string, error) {
	return cryptox.Fingerprint(secret), nil
}

// Gate holds one session's privilege state. Construct one per session and
// hand it to consumers by reference; there is no ambient/static instance.
type Gate struct {
	fingerprint   string
	tokenValidity time.Duration
	privileged    bool
	signingKey    []byte
}

// New constructs an unprivileged gate that verifies candidates against the
// given fingerprint (lowercase hex SHA-256 of the admin secret).
func New(fingerprint string, tokenValidity time.Duration) *Gate {
	return &Gate{fingerprint: fingerprint, tokenValidity: tokenValidity}
}

// Verify digests the candidate secret and compares it against the stored
// fingerprint in constant time. On a match the privilege flag flips to true
// and the token-signing key is retained; on a mismatch the flag is left
// unchanged. A digest computation failure is a hard error wrapping
// common.ErrCredentialCompute; it must never be reported as a wrong secret.
// The candidate slice is wiped before returning.
func (g *Gate) Verify(secret []byte) (bool, error) {
	defer common.WipeByteArray(secret)

	candidate, err := fingerprintFn(secret)
	if err != nil {
		return false, fmt.Errorf("%w: %v", common.ErrCredentialCompute, err)
	}

	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.fingerprint)) == 0 {
		return false, nil
	}

	g.privileged = true
	g.signingKey = cryptox.DeriveSigningKey(g.fingerprint)
	return true, nil
}

// Revoke resets the privilege flag unconditionally and wipes the signing key.
func (g *Gate) Revoke() {
	g.privileged = false
	common.WipeByteArray(g.signingKey)
	g.signingKey = nil
}

// IsPrivileged reports the current state of the privilege flag.
func (g *Gate) IsPrivileged() bool {
	return g.privileged
}

// Token mints a short-lived admin token for the store's mutation routes.
// It implements client.TokenSource. Calling it on an unprivileged gate is a
// caller bug surfaced as ErrUnauthorized.
func (g *Gate) Token() (string, error) {
	if !g.privileged {
		return "", common.ErrUnauthorized
	}
	return auth.GenerateToken(g.signingKey, g.tokenValidity)
}
