package template

import (
	"context"
	"math/rand/v2"

	"poemclub/contexts/publishing/poem-generator/domain/entities"
	"poemclub/contexts/publishing/poem-generator/domain/services"
)

// Generator picks a poem from the offline table. It never fails.
type Generator struct {
	// Pick returns an index in [0, n). Defaults to math/rand.
	Pick func(n int) int
}

func (g Generator) Generate(_ context.Context, request entities.Request) (entities.GeneratedPoem, error) {
	theme := services.TemplateTheme(request.Title)
	style := services.TemplateStyle(request.Title)
	poems := services.TemplatesFor(style, theme)

	pick := g.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return entities.GeneratedPoem{
		Content: poems[pick(len(poems))],
		Theme:   theme,
		Style:   style,
	}, nil
}
