package poemservice

import (
	"log/slog"

	"golang.org/x/sync/singleflight"

	httpadapter "poemclub/contexts/publishing/poem-service/adapters/http"
	"poemclub/contexts/publishing/poem-service/adapters/memory"
	"poemclub/contexts/publishing/poem-service/application/commands"
	"poemclub/contexts/publishing/poem-service/application/queries"
	"poemclub/contexts/publishing/poem-service/domain/entities"
	"poemclub/contexts/publishing/poem-service/ports"
)

// Module is the poem-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository         ports.PoemRepository
	Clock              ports.Clock
	IDGenerator        ports.IDGenerator
	ReservedSubdomains []string
	Logger             *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			ListRecent: queries.ListRecentPoemsUseCase{
				Poems:  deps.Repository,
				Logger: deps.Logger,
			},
			GetBySubdomain: queries.GetPoemBySubdomainUseCase{
				Poems:  deps.Repository,
				Group:  &singleflight.Group{},
				Logger: deps.Logger,
			},
			CreatePoem: commands.CreatePoemUseCase{
				Poems:              deps.Repository,
				Clock:              deps.Clock,
				IDGenerator:        deps.IDGenerator,
				ReservedSubdomains: deps.ReservedSubdomains,
				Logger:             deps.Logger,
			},
			IncrementViews: commands.IncrementViewsUseCase{
				Poems:  deps.Repository,
				Logger: deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(seed []entities.Poem, reserved []string, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository:         store,
		Clock:              store,
		IDGenerator:        store,
		ReservedSubdomains: reserved,
		Logger:             logger,
	})
	module.Store = store
	return module
}
