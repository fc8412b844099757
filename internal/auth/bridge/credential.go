package bridge

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
)

var ErrMissingServerSecret = errors.New("bridge: signing secret not configured")

const (
	// pseudoDomain is a reserved non-deliverable domain so derived login
	// emails can never collide with a real mailbox.
	pseudoDomain = "line.local"

	secretLength = 32
)

// Credential is the synthetic email/password pair used against the
// authentication provider for a bridged identity. LoginSecret must never
// be logged or leave the resolve step.
type Credential struct {
	LoginEmail  string
	LoginSecret string
}

// Derive computes the credential for a provider user id. The same id and
// server secret always yield the same credential; the provider's auth
// store is the only place the password exists, so it has to be
// re-derivable on every login.
func Derive(providerUserID, serverSecret string) (Credential, error) {
	if serverSecret == "" {
		return Credential{}, ErrMissingServerSecret
	}

	mac := hmac.New(sha256.New, []byte(serverSecret))
	mac.Write([]byte(providerUserID))

	// base64url keeps the secret inside the 7-bit printable range; the
	// auth provider transports credentials through header-constrained
	// channels.
	secret := base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
	if len(secret) > secretLength {
		secret = secret[:secretLength]
	}

	return Credential{
		LoginEmail:  providerUserID + "@" + pseudoDomain,
		LoginSecret: secret,
	}, nil
}
