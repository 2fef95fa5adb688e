package handlers

import (
	"context"

	"github.com/CarlosL15/AutomationWebApp/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	CurrentUser(ctx context.Context, userID int64) (*model.User, error)
}
