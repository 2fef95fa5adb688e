package repository

import (
	"context"

	"github.com/CarlosL15/AutomationWebApp/internal/domain/model"
)

// UserRepository describes persistence operations for user accounts.
// Create must rely on the storage-level unique index on email: a duplicate
// insert returns domain ErrEmailTaken even under concurrent registrations.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, fullName *string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
