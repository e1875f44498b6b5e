package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vominhduc11/dealerhub/internal/config"
)

// Module exposes catalog client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.CatalogFeedAddress, p.Logger)
}
