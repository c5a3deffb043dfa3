package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/mediashelf/pkg/app"
	"github.com/ghuser/mediashelf/pkg/config"
	"github.com/ghuser/mediashelf/services/media/application/handlers"
	appsvcs "github.com/ghuser/mediashelf/services/media/application/services"
)

// MediaRoutes registers shelf endpoints on the provided chi router.
func MediaRoutes(r chi.Router, a *app.Application) {
	Routes(r, appsvcs.New(a), a.Config != nil && a.Config.Environment == config.EnvProduction)
}

// Routes registers shelf endpoints backed by svcs.
func Routes(r chi.Router, svcs *appsvcs.Services, production bool) {
	r.Route("/shelves", func(r chi.Router) {
		// Static segment wins over {kind} in chi's radix tree.
		r.Post("/video-games/refresh", handlers.NewRefreshVideoGamesHandler(svcs, production).Execute)

		r.Route("/{kind}", func(r chi.Router) {
			r.Get("/", handlers.NewGetShelfHandler(svcs, production).Execute)
			r.Post("/items", handlers.NewPostItemHandler(svcs, production).Execute)
			r.Get("/pick", handlers.NewPickItemHandler(svcs, production).Execute)
		})
	})
}
