package queries

import (
	"context"
	"log/slog"

	application "poemclub/contexts/publishing/poem-service/application"
	"poemclub/contexts/publishing/poem-service/domain/entities"
	"poemclub/contexts/publishing/poem-service/ports"
)

const (
	defaultRecentLimit = 24
	maxRecentLimit     = 100
)

type ListRecentPoemsQuery struct {
	Limit int
}

type ListRecentPoemsResult struct {
	Items []entities.Poem
}

type ListRecentPoemsUseCase struct {
	Poems  ports.PoemRepository
	Logger *slog.Logger
}

// Execute never fails: the homepage degrades to an empty list when the store
// is unavailable.
func (u ListRecentPoemsUseCase) Execute(ctx context.Context, query ListRecentPoemsQuery) ListRecentPoemsResult {
	logger := application.ResolveLogger(u.Logger)

	limit := query.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	items, err := u.Poems.ListPublicPoems(ctx, limit)
	if err != nil {
		logger.Error("list recent poems failed",
			"event", "list_recent_poems_failed",
			"module", "publishing/poem-service",
			"layer", "application",
			"limit", limit,
			"error", err.Error(),
		)
		return ListRecentPoemsResult{Items: []entities.Poem{}}
	}
	if items == nil {
		items = []entities.Poem{}
	}
	return ListRecentPoemsResult{Items: items}
}
