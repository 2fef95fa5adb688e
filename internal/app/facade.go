package app

import (
	"context"

	"github.com/CarlosL15/AutomationWebApp/internal/domain/model"
	"github.com/CarlosL15/AutomationWebApp/internal/usecase"
)

// AuthFacade is the application-level entry point handlers talk to.
type AuthFacade struct {
	auth *usecase.AuthUseCase
}

// NewAuthFacade constructs AuthFacade.
func NewAuthFacade(auth *usecase.AuthUseCase) *AuthFacade {
	return &AuthFacade{auth: auth}
}

// Register creates a new user account.
func (f *AuthFacade) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	return f.auth.Register(ctx, email, password, firstName, lastName)
}

// Authenticate verifies credentials and returns the user plus a bearer token.
func (f *AuthFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

// ParseToken extracts the user id asserted by the token.
func (f *AuthFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// CurrentUser resolves the authenticated user by identifier.
func (f *AuthFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}
