package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/CarlosL15/AutomationWebApp/internal/domain/errors"
	"github.com/CarlosL15/AutomationWebApp/internal/domain/model"
	"github.com/CarlosL15/AutomationWebApp/internal/domain/repository"
	pkgAuth "github.com/CarlosL15/AutomationWebApp/internal/pkg/auth"
)

// AuthUseCase handles account registration and credential verification.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new user. Input is validated before any hashing happens.
// There is no lookup-then-insert: the unique index on email is the sole
// authority for duplicates, so concurrent registrations cannot both succeed.
func (u *AuthUseCase) Register(ctx context.Context, email, password, firstName, lastName string) (*model.User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, email, hash, composeFullName(firstName, lastName))
}

// Authenticate verifies credentials and returns the user with a fresh bearer
// token. Unknown email and wrong password collapse into the same error.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if err == domainErrors.ErrNotFound {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

func composeFullName(firstName, lastName string) *string {
	parts := make([]string, 0, 2)
	if firstName = strings.TrimSpace(firstName); firstName != "" {
		parts = append(parts, firstName)
	}
	if lastName = strings.TrimSpace(lastName); lastName != "" {
		parts = append(parts, lastName)
	}
	if len(parts) == 0 {
		return nil
	}
	full := strings.Join(parts, " ")
	return &full
}
