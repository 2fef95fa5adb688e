package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/CarlosL15/AutomationWebApp/internal/app"
	"github.com/CarlosL15/AutomationWebApp/internal/config"
	"github.com/CarlosL15/AutomationWebApp/internal/domain/repository"
	"github.com/CarlosL15/AutomationWebApp/internal/storage/postgres"
	"github.com/CarlosL15/AutomationWebApp/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURL:     "postgres://stub",
		JWTSecret:       "secret",
		TokenTTL:        time.Minute,
		AllowedOrigins:  []string{"*"},
		ShutdownTimeout: time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()

	var facade *app.AuthFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected auth facade instance")
	}
}
