package handlers

import (
	"context"

	"restaurant-booking-api/internal/models"
	"restaurant-booking-api/internal/router"
	"restaurant-booking-api/internal/services"
)

// AuthHandler handles the signup and signin routes.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// HandleSignUp handles POST /signup.
func (h *AuthHandler) HandleSignUp(ctx context.Context, req *router.Request) (*router.Response, error) {
	var body models.SignUpRequest
	if err := decodeBody(req, &body); err != nil {
		return nil, err
	}

	message, err := h.authService.SignUp(ctx, &body)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, message), nil
}

// HandleSignIn handles POST /signin.
func (h *AuthHandler) HandleSignIn(ctx context.Context, req *router.Request) (*router.Response, error) {
	var body models.SignInRequest
	if err := decodeBody(req, &body); err != nil {
		return nil, err
	}

	result, err := h.authService.SignIn(ctx, &body)
	if err != nil {
		return nil, err
	}
	return router.NewResponse(200, result), nil
}
