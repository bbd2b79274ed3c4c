// Package identity wraps the external identity provider behind the three
// operations this system needs: account creation, password management and
// non-interactive authentication.
package identity

import (
	"context"
	"errors"
)

// Provider errors
var (
	// ErrAccountExists is returned by CreateAccount when the username is
	// already taken. Callers treat this as a recoverable condition.
	ErrAccountExists = errors.New("account already exists")

	// ErrNotAuthorized is returned by Authenticate when the credentials are
	// rejected by the provider.
	ErrNotAuthorized = errors.New("authentication rejected")
)

// Account carries the attributes set on a new identity account.
type Account struct {
	Email     string
	FirstName string
	LastName  string
}

// Provider is the identity gateway. No credentials are stored locally; all
// operations are keyed by email.
type Provider interface {
	// CreateAccount registers the account with a temporary password, the
	// email marked verified and any welcome notification suppressed.
	CreateAccount(ctx context.Context, account Account, tempPassword string) error

	// SetPassword sets the account password. Permanent passwords do not
	// require a change at first sign-in.
	SetPassword(ctx context.Context, email, password string, permanent bool) error

	// Authenticate runs the non-interactive authentication flow and returns
	// the resulting identity token.
	Authenticate(ctx context.Context, email, password string) (string, error)
}
