package di

import (
	"github.com/CarlosL15/AutomationWebApp/internal/app"
	"github.com/CarlosL15/AutomationWebApp/internal/config"
	"github.com/CarlosL15/AutomationWebApp/internal/logger"
	"github.com/CarlosL15/AutomationWebApp/internal/pkg/auth"
	"github.com/CarlosL15/AutomationWebApp/internal/server/http/handlers"
	"github.com/CarlosL15/AutomationWebApp/internal/server/http/router"
	"github.com/CarlosL15/AutomationWebApp/internal/storage/postgres"
	"github.com/CarlosL15/AutomationWebApp/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(facade *app.AuthFacade) handlers.AuthFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
