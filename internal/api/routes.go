package api

import (
	"net/http"

	"github.com/lumiderm/lumiderm/internal/config"
	"github.com/lumiderm/lumiderm/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Tasks.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)

	routes.Register(
		mux,
		domain.Prompts.Handler().Routes(),
	)
}
