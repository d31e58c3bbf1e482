package api

import (
	"github.com/lumiderm/lumiderm/internal/agents"
	"github.com/lumiderm/lumiderm/internal/config"
	"github.com/lumiderm/lumiderm/internal/identity"
	"github.com/lumiderm/lumiderm/internal/infrastructure"
	"github.com/lumiderm/lumiderm/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration, the token
// verifier, and the shared model invoker. The invoker is built once here and
// threaded into every domain system that performs inference.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Invoker    agents.Invoker
	Identity   identity.System
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Pagination: cfg.API.Pagination,
		Invoker:    agents.New(cfg.Agent),
		Identity:   identity.New(cfg.Identity, logger),
	}
}
