package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"restaurant-booking-api/internal/adapters/identity"
	"restaurant-booking-api/internal/models"
)

// authService implements AuthService on top of the identity gateway.
type authService struct {
	provider identity.Provider
}

// NewAuthService creates a new auth service instance.
func NewAuthService(provider identity.Provider) AuthService {
	return &authService{provider: provider}
}

// SignUp validates the request (email, then password, then names — first
// failure wins), creates the account with a suppressed welcome message and
// sets the supplied password as permanent. An existing account is treated as
// a password update, not a failure.
func (s *authService) SignUp(ctx context.Context, req *models.SignUpRequest) (string, error) {
	log := logrus.WithField("email", req.Email)
	log.Info("signup attempt")

	if !models.IsValidEmail(req.Email) {
		log.Warn("invalid email format")
		return "", NewError(KindInvalidInput, "Invalid email format")
	}
	if !models.IsValidPassword(req.Password) {
		log.Warn("invalid password format")
		return "", NewError(KindInvalidInput, "Invalid password format")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		log.Warn("missing first or last name")
		return "", NewError(KindInvalidInput, "Missing or empty firstName or lastName")
	}

	account := identity.Account{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	err := s.provider.CreateAccount(ctx, account, req.Password)
	if errors.Is(err, identity.ErrAccountExists) {
		log.Info("account already exists, updating password")
		if err := s.provider.SetPassword(ctx, req.Email, req.Password, true); err != nil {
			return "", WrapError(KindUpstreamFailure, "Failed to update password: "+err.Error(), err)
		}
		return "Sign-up successful (user already existed, password updated)", nil
	}
	if err != nil {
		return "", WrapError(KindUpstreamFailure, "Signup failed: "+err.Error(), err)
	}

	if err := s.provider.SetPassword(ctx, req.Email, req.Password, true); err != nil {
		return "", WrapError(KindUpstreamFailure, "Signup failed: "+err.Error(), err)
	}

	log.Info("signup successful")
	return "Sign-up successful", nil
}

// SignIn gates on the same format rules, then runs the non-interactive
// authentication flow. Rejected credentials map to an invalid-input error
// carrying the provider's message rather than falling through to the
// catch-all.
func (s *authService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	if !models.IsValidEmail(req.Email) || !models.IsValidPassword(req.Password) {
		return nil, NewError(KindInvalidInput, "Invalid credentials")
	}

	token, err := s.provider.Authenticate(ctx, req.Email, req.Password)
	if errors.Is(err, identity.ErrNotAuthorized) {
		return nil, WrapError(KindInvalidInput, "Authentication failed: "+err.Error(), err)
	}
	if err != nil {
		return nil, WrapError(KindUpstreamFailure, "Authentication failed: "+err.Error(), err)
	}

	return &models.SignInResponse{IDToken: token}, nil
}
