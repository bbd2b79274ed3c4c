package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// fakeSigningSecret signs tokens issued by the fake provider. Local
// development only; the tokens carry no trust.
const fakeSigningSecret = "local-development-secret"

type fakeAccount struct {
	account  Account
	password string
}

// FakeProvider is an in-memory Provider for tests and the local development
// server. Authenticate mints a real (HS256-signed) JWT so downstream token
// parsing behaves as it does against the live provider.
type FakeProvider struct {
	mu       sync.Mutex
	accounts map[string]*fakeAccount
}

// NewFakeProvider creates an empty fake identity provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{accounts: make(map[string]*fakeAccount)}
}

// CreateAccount registers the account, failing with ErrAccountExists on a
// duplicate email.
func (p *FakeProvider) CreateAccount(ctx context.Context, account Account, tempPassword string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.accounts[account.Email]; ok {
		return fmt.Errorf("create account for %s: %w", account.Email, ErrAccountExists)
	}
	p.accounts[account.Email] = &fakeAccount{account: account, password: tempPassword}
	return nil
}

// SetPassword replaces the stored password.
func (p *FakeProvider) SetPassword(ctx context.Context, email, password string, permanent bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, ok := p.accounts[email]
	if !ok {
		return fmt.Errorf("set password for %s: account not found", email)
	}
	stored.password = password
	return nil
}

// Authenticate checks the stored password and issues a signed identity token.
func (p *FakeProvider) Authenticate(ctx context.Context, email, password string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored, ok := p.accounts[email]
	if !ok || stored.password != password {
		return "", fmt.Errorf("authenticate %s: %w", email, ErrNotAuthorized)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         email,
		"email":       email,
		"given_name":  stored.account.FirstName,
		"family_name": stored.account.LastName,
		"iat":         now.Unix(),
		"exp":         now.Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(fakeSigningSecret))
	if err != nil {
		return "", fmt.Errorf("authenticate %s: failed to sign token: %w", email, err)
	}
	return signed, nil
}
