package bridge

import (
	"context"
	"errors"

	"github.com/Lee0514/travel-app-backend/internal/auth/accounts"
	"github.com/Lee0514/travel-app-backend/internal/auth/provider/line"
	"github.com/Lee0514/travel-app-backend/internal/logger"
)

var (
	ErrAccountConflictUnresolved = errors.New("bridge: account exists but sign-in failed")
	ErrNoSessionIssued           = errors.New("bridge: provider did not issue a session token")
)

// Resolver signs a bridged identity into the authentication provider,
// creating the account on first contact. The provider's email uniqueness
// is the only serialization point: a concurrent double callback loses the
// create race and recovers through the compensating sign-in.
type Resolver struct {
	auth accounts.Client
}

func NewResolver(auth accounts.Client) *Resolver {
	return &Resolver{auth: auth}
}

// Resolve returns the backend account for the credential, never creating
// a second account for an already-bridged identity.
func (r *Resolver) Resolve(ctx context.Context, cred Credential, profile *line.Profile) (*accounts.Account, error) {

	// 1. Returning user: sign-in with the derived credential.
	acc, err := r.auth.SignIn(ctx, cred.LoginEmail, cred.LoginSecret)
	if err == nil {
		return r.withSession(acc)
	}

	// 2. First contact: create the account with provider metadata.
	acc, err = r.auth.SignUp(ctx, cred.LoginEmail, cred.LoginSecret, map[string]any{
		"provider":     "line",
		"line_user_id": profile.UserID,
		"display_name": profile.DisplayName,
	})
	if err == nil {
		return r.withSession(acc)
	}

	if !errors.Is(err, accounts.ErrAlreadyRegistered) {
		return nil, err
	}

	// 3. The account exists after all (lost create race, or an earlier
	// signup left no session). Compensate with one more sign-in.
	logger.Warn("bridge: create lost to existing account, retrying sign-in", map[string]any{
		"login_email": cred.LoginEmail,
	})

	acc, err = r.auth.SignIn(ctx, cred.LoginEmail, cred.LoginSecret)
	if err != nil {
		return nil, errors.Join(ErrAccountConflictUnresolved, err)
	}

	return r.withSession(acc)
}

func (r *Resolver) withSession(acc *accounts.Account) (*accounts.Account, error) {
	if acc.AccessToken == "" {
		// The provider enforces an out-of-band confirmation step the
		// bridge cannot complete on the user's behalf.
		return nil, ErrNoSessionIssued
	}
	return acc, nil
}
