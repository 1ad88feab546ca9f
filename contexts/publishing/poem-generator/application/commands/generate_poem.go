package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	application "poemclub/contexts/publishing/poem-generator/application"
	"poemclub/contexts/publishing/poem-generator/domain/entities"
	domainerrors "poemclub/contexts/publishing/poem-generator/domain/errors"
	"poemclub/contexts/publishing/poem-generator/domain/services"
	"poemclub/contexts/publishing/poem-generator/ports"
)

const placeholderContent = "A beautiful poem awaits..."

type GeneratePoemCommand struct {
	Title string
}

type GeneratePoemResult struct {
	Poem entities.GeneratedPoem
}

type GeneratePoemUseCase struct {
	Generator ports.TextGenerator
	Logger    *slog.Logger
}

// Execute never retries. Generator failures surface as ErrUpstreamFailed.
func (u GeneratePoemUseCase) Execute(ctx context.Context, cmd GeneratePoemCommand) (GeneratePoemResult, error) {
	logger := application.ResolveLogger(u.Logger)
	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		return GeneratePoemResult{}, domainerrors.ErrInvalidTitle
	}

	request := entities.ParseRequest(title)
	poem, err := u.Generator.Generate(ctx, request)
	if err != nil {
		logger.Error("poem generation failed",
			"event", "poem_generation_failed",
			"module", "publishing/poem-generator",
			"layer", "application",
			"title", request.Title,
			"error", err.Error(),
		)
		return GeneratePoemResult{}, fmt.Errorf("%w: %v", domainerrors.ErrUpstreamFailed, err)
	}

	poem.Content = strings.TrimSpace(poem.Content)
	if poem.Content == "" {
		poem.Content = placeholderContent
	}
	poem.Theme = firstNonEmpty(poem.Theme, request.Options.Theme, services.InferTheme(request.Title))
	poem.Style = firstNonEmpty(poem.Style, request.Options.Style, services.InferStyle(request.Title))

	logger.Info("poem generated",
		"event", "poem_generated",
		"module", "publishing/poem-generator",
		"layer", "application",
		"theme", poem.Theme,
		"style", poem.Style,
	)
	return GeneratePoemResult{Poem: poem}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
