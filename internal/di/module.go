package di

import (
	"github.com/vominhduc11/dealerhub/internal/adapter/catalog"
	"github.com/vominhduc11/dealerhub/internal/app"
	"github.com/vominhduc11/dealerhub/internal/config"
	"github.com/vominhduc11/dealerhub/internal/logger"
	"github.com/vominhduc11/dealerhub/internal/pkg/auth"
	"github.com/vominhduc11/dealerhub/internal/server/http/handlers"
	"github.com/vominhduc11/dealerhub/internal/server/http/router"
	"github.com/vominhduc11/dealerhub/internal/session"
	"github.com/vominhduc11/dealerhub/internal/storage/postgres"
	"github.com/vominhduc11/dealerhub/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		catalog.Module,
		session.Module,
		usecase.Module,
		fx.Provide(func(client catalog.Client) app.CatalogProvider { return client }),
		fx.Provide(func(facade *app.StorefrontFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
