package session

import (
	"go.uber.org/fx"

	"github.com/vominhduc11/dealerhub/internal/config"
	"github.com/vominhduc11/dealerhub/internal/pricing"
)

// Module provides the session manager over the default discount table.
var Module = fx.Provide(newManager)

type managerParams struct {
	fx.In

	Config *config.Config
}

func newManager(p managerParams) *Manager {
	return NewManager(pricing.DefaultRules, p.Config.SessionTTL)
}
