package accounts

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")
	ErrAlreadyRegistered  = errors.New("accounts: email already registered")
)

// Account is what the authentication provider returns for a sign-in or
// sign-up. AccessToken is empty when the provider withheld a session
// (e.g. pending email confirmation).
type Account struct {
	ID          string
	Email       string
	AccessToken string
}

// User is the owner of an access token, as reported by the provider.
type User struct {
	ID    string
	Email string
}

// Client abstracts the backend authentication provider. It is the only
// path through which accounts are read or created; the provider owns the
// account records and enforces email uniqueness.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Account, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Account, error)
	GetUser(ctx context.Context, accessToken string) (*User, error)
}
