package queries

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	application "poemclub/contexts/publishing/poem-service/application"
	"poemclub/contexts/publishing/poem-service/domain/entities"
	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"
	"poemclub/contexts/publishing/poem-service/ports"
)

// sharedLoadTimeout bounds a coalesced store read, which no longer follows
// any single caller's deadline.
const sharedLoadTimeout = 5 * time.Second

type GetPoemBySubdomainQuery struct {
	Subdomain string
}

type GetPoemBySubdomainResult struct {
	Poem  entities.Poem
	Found bool
}

// GetPoemBySubdomainUseCase resolves a tenant to its public poem.
// Concurrent lookups of the same subdomain share one store read; nothing is
// cached past the in-flight call. The shared read is detached from the
// caller that started it, so one client going away does not fail the rest.
type GetPoemBySubdomainUseCase struct {
	Poems  ports.PoemRepository
	Group  *singleflight.Group
	Logger *slog.Logger
}

func (u GetPoemBySubdomainUseCase) Execute(ctx context.Context, query GetPoemBySubdomainQuery) GetPoemBySubdomainResult {
	logger := application.ResolveLogger(u.Logger)
	subdomain := strings.ToLower(strings.TrimSpace(query.Subdomain))
	if subdomain == "" {
		return GetPoemBySubdomainResult{}
	}

	poem, err := u.load(ctx, subdomain)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrPoemNotFound):
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			logger.Debug("get poem by subdomain abandoned",
				"event", "get_poem_by_subdomain_abandoned",
				"module", "publishing/poem-service",
				"layer", "application",
				"subdomain", subdomain,
				"error", err.Error(),
			)
		default:
			logger.Error("get poem by subdomain failed",
				"event", "get_poem_by_subdomain_failed",
				"module", "publishing/poem-service",
				"layer", "application",
				"subdomain", subdomain,
				"error", err.Error(),
			)
		}
		return GetPoemBySubdomainResult{}
	}

	if !poem.IsPublic {
		return GetPoemBySubdomainResult{}
	}
	return GetPoemBySubdomainResult{Poem: poem, Found: true}
}

func (u GetPoemBySubdomainUseCase) load(ctx context.Context, subdomain string) (entities.Poem, error) {
	if u.Group == nil {
		return u.Poems.GetPublicPoemBySubdomain(ctx, subdomain)
	}

	detached := context.WithoutCancel(ctx)
	results := u.Group.DoChan(subdomain, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(detached, sharedLoadTimeout)
		defer cancel()
		return u.Poems.GetPublicPoemBySubdomain(loadCtx, subdomain)
	})

	select {
	case <-ctx.Done():
		return entities.Poem{}, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			return entities.Poem{}, result.Err
		}
		return result.Val.(entities.Poem), nil
	}
}
