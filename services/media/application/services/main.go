package services

import (
	"github.com/ghuser/mediashelf/pkg/app"
	"github.com/ghuser/mediashelf/services/media/infrastructure/memory"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Shelf *ShelfService
}

// New wires the media services with infrastructure from the Application
// container and preloads the sample catalog when SEED_CATALOG is set.
func New(a *app.Application) *Services {
	var pub Publisher
	if a.EventBus != nil {
		pub = a.EventBus
	}
	shelf := NewShelfService(memory.NewVideoGameRepository(), pub, a.Logger)

	if a.Config != nil && a.Config.SeedCatalog {
		shelf.Seed(
			memory.SampleBoardGames(),
			memory.SampleMovies(),
			memory.SampleTVShows(),
			memory.SampleVideoGames(),
		)
		a.Logger.Info("sample catalog loaded")
	}

	return &Services{Shelf: shelf}
}
