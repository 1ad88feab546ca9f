package commands

import (
	"context"
	"log/slog"
	"strings"

	application "poemclub/contexts/publishing/poem-service/application"
	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"
	"poemclub/contexts/publishing/poem-service/ports"
)

type IncrementViewsCommand struct {
	PoemID string
}

type IncrementViewsUseCase struct {
	Poems  ports.PoemRepository
	Logger *slog.Logger
}

// Execute only fails on a missing id. Store failures are logged and
// swallowed so a lost view never breaks a page.
func (u IncrementViewsUseCase) Execute(ctx context.Context, cmd IncrementViewsCommand) error {
	logger := application.ResolveLogger(u.Logger)
	poemID := strings.TrimSpace(cmd.PoemID)
	if poemID == "" {
		return domainerrors.ErrInvalidPoemID
	}

	if err := u.Poems.IncrementViews(ctx, poemID); err != nil {
		logger.Warn("increment poem views failed",
			"event", "increment_poem_views_failed",
			"module", "publishing/poem-service",
			"layer", "application",
			"poem_id", poemID,
			"error", err.Error(),
		)
	}
	return nil
}
