// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/lumiderm/lumiderm/internal/config"
	"github.com/lumiderm/lumiderm/internal/identity"
	"github.com/lumiderm/lumiderm/internal/infrastructure"
	"github.com/lumiderm/lumiderm/pkg/middleware"
	"github.com/lumiderm/lumiderm/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// Every route behind the module requires a verified bearer token.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(identity.Require(runtime.Identity, runtime.Logger))

	return m, nil
}
