package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestFakeProviderCreateAccountDuplicate(t *testing.T) {
	provider := NewFakeProvider()
	account := Account{Email: "alice@example.com", FirstName: "Alice", LastName: "Smith"}

	if err := provider.CreateAccount(context.Background(), account, "Temp123$temp"); err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}

	err := provider.CreateAccount(context.Background(), account, "Temp123$temp")
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("CreateAccount() duplicate error = %v, want ErrAccountExists", err)
	}
}

func TestFakeProviderAuthenticate(t *testing.T) {
	provider := NewFakeProvider()
	account := Account{Email: "alice@example.com", FirstName: "Alice", LastName: "Smith"}
	if err := provider.CreateAccount(context.Background(), account, "Password123$"); err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}

	token, err := provider.Authenticate(context.Background(), "alice@example.com", "Password123$")
	if err != nil {
		t.Fatalf("Authenticate() unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims["email"] != "alice@example.com" {
		t.Errorf("token email claim = %v, want alice@example.com", claims["email"])
	}
	if claims["given_name"] != "Alice" {
		t.Errorf("token given_name claim = %v, want Alice", claims["given_name"])
	}
}

func TestFakeProviderAuthenticateFailures(t *testing.T) {
	provider := NewFakeProvider()
	account := Account{Email: "alice@example.com"}
	if err := provider.CreateAccount(context.Background(), account, "Password123$"); err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown account", "bob@example.com", "Password123$"},
		{"wrong password", "alice@example.com", "WrongPass123$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Authenticate(context.Background(), tt.email, tt.password)
			if !errors.Is(err, ErrNotAuthorized) {
				t.Errorf("Authenticate() error = %v, want ErrNotAuthorized", err)
			}
		})
	}
}

func TestFakeProviderSetPassword(t *testing.T) {
	provider := NewFakeProvider()
	account := Account{Email: "alice@example.com"}
	if err := provider.CreateAccount(context.Background(), account, "OldPass123$a"); err != nil {
		t.Fatalf("CreateAccount() unexpected error: %v", err)
	}

	if err := provider.SetPassword(context.Background(), "alice@example.com", "NewPass123$a", true); err != nil {
		t.Fatalf("SetPassword() unexpected error: %v", err)
	}
	if _, err := provider.Authenticate(context.Background(), "alice@example.com", "NewPass123$a"); err != nil {
		t.Errorf("Authenticate() with new password failed: %v", err)
	}
}
