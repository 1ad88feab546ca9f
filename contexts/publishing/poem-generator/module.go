package poemgenerator

import (
	"log/slog"

	httpadapter "poemclub/contexts/publishing/poem-generator/adapters/http"
	"poemclub/contexts/publishing/poem-generator/adapters/template"
	"poemclub/contexts/publishing/poem-generator/application/commands"
	"poemclub/contexts/publishing/poem-generator/ports"
)

type Module struct {
	Handler httpadapter.Handler
}

type Dependencies struct {
	Generator ports.TextGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			Generate: commands.GeneratePoemUseCase{
				Generator: deps.Generator,
				Logger:    deps.Logger,
			},
			Logger: deps.Logger,
		},
	}
}

// NewTemplateModule serves poems from the offline table.
func NewTemplateModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Generator: template.Generator{},
		Logger:    logger,
	})
}
