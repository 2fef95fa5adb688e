package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/CarlosL15/AutomationWebApp/internal/domain/errors"
	pkgAuth "github.com/CarlosL15/AutomationWebApp/internal/pkg/auth"
	testhelpers "github.com/CarlosL15/AutomationWebApp/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(userID int64, email string) (string, error) {
			return fmt.Sprintf("token-%d", userID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "alice@example.com", "password123", "Alice", "Smith")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.FullName == nil || *user.FullName != "Alice Smith" {
		t.Fatalf("unexpected full name %v", user.FullName)
	}
	stored, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password123" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterNormalizesEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	user, err := uc.Register(ctx, "  Bob@Example.COM ", "password123", "", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.Email != "bob@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if user.FullName != nil {
		t.Fatalf("expected no full name, got %q", *user.FullName)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "bob@example.com", "secret-pass", "", ""); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, err := uc.Register(ctx, "bob@example.com", "other-secret", "", ""); err != domainErrors.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	ctx := context.Background()

	if _, err := uc.Register(ctx, "", "password123", "", ""); err != domainErrors.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := uc.Register(ctx, "not-an-email", "password123", "", ""); err != domainErrors.ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := uc.Register(ctx, "carol@example.com", "short", "", ""); err != domainErrors.ErrPasswordTooShort {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, newStrategyStub())

	if _, err := uc.Register(context.Background(), "dave@example.com", "password123", "", ""); err == nil {
		t.Fatal("expected hasher error to propagate")
	}
	if len(repo.ByEmail) != 0 {
		t.Fatal("expected nothing persisted when hashing fails")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "carol@example.com", "password123", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@example.com", "wrongpass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}

	user, token, err := uc.Authenticate(ctx, "carol@example.com", "password123")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Email != "carol@example.com" {
		t.Fatalf("unexpected user %q", user.Email)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseAuthenticateUnknownEmail(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	// Unknown email must fail with the exact same error as a wrong password.
	_, _, err := uc.Authenticate(context.Background(), "nobody@example.com", "anything-goes")
	if err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateEmptyInput(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())
	ctx := context.Background()

	if _, _, err := uc.Authenticate(ctx, "", "password123"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "carol@example.com", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateRepositoryError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	repo.Err = fmt.Errorf("connection refused")
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	_, _, err := uc.Authenticate(context.Background(), "carol@example.com", "password123")
	if err == nil || err == domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected storage error to surface untranslated, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateTokenError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{IssueFn: func(int64, string) (string, error) {
		return "", fmt.Errorf("sign error")
	}}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, strategy)

	ctx := context.Background()
	if _, err := uc.Register(ctx, "erin@example.com", "password123", "", ""); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "erin@example.com", "password123"); err == nil {
		t.Fatal("expected signing error to propagate")
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	id, err := uc.ParseToken("token-42")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected id 42, got %d", id)
	}

	if _, err := uc.ParseToken("bad-token"); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	created, err := uc.Register(ctx, "frank@example.com", "password123", "Frank", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	fetched, err := uc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id failed: %v", err)
	}
	if fetched.Email != "frank@example.com" {
		t.Fatalf("unexpected email %q", fetched.Email)
	}

	if _, err := uc.GetByID(ctx, 9999); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
