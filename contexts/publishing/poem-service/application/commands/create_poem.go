package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "poemclub/contexts/publishing/poem-service/application"
	"poemclub/contexts/publishing/poem-service/domain/entities"
	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"
	"poemclub/contexts/publishing/poem-service/ports"
)

type CreatePoemCommand struct {
	Title    string
	Content  string
	Theme    string
	Style    string
	IsPublic bool
}

type CreatePoemResult struct {
	Poem entities.Poem
}

type CreatePoemUseCase struct {
	Poems       ports.PoemRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	// ReservedSubdomains are labels the host router never treats as tenants.
	ReservedSubdomains []string
	Logger             *slog.Logger
}

// Execute inserts the poem. Write failures propagate: losing a submission
// silently is not acceptable.
func (u CreatePoemUseCase) Execute(ctx context.Context, cmd CreatePoemCommand) (CreatePoemResult, error) {
	logger := application.ResolveLogger(u.Logger)

	poemID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return CreatePoemResult{}, err
	}
	poem, err := entities.NewPoem(poemID, cmd.Title, cmd.Content, cmd.Theme, cmd.Style, cmd.IsPublic, u.now())
	if err != nil {
		return CreatePoemResult{}, err
	}
	if u.isReserved(poem.Subdomain) {
		logger.Warn("create poem rejected reserved subdomain",
			"event", "create_poem_reserved_subdomain",
			"module", "publishing/poem-service",
			"layer", "application",
			"subdomain", poem.Subdomain,
		)
		return CreatePoemResult{}, domainerrors.ErrSubdomainReserved
	}

	if err := u.Poems.CreatePoem(ctx, poem); err != nil {
		logger.Warn("create poem failed",
			"event", "create_poem_failed",
			"module", "publishing/poem-service",
			"layer", "application",
			"subdomain", poem.Subdomain,
			"error", err.Error(),
		)
		return CreatePoemResult{}, err
	}

	logger.Info("poem created",
		"event", "poem_created",
		"module", "publishing/poem-service",
		"layer", "application",
		"poem_id", poem.PoemID,
		"subdomain", poem.Subdomain,
		"is_public", poem.IsPublic,
	)
	return CreatePoemResult{Poem: poem}, nil
}

func (u CreatePoemUseCase) isReserved(subdomain string) bool {
	for _, reserved := range u.ReservedSubdomains {
		if strings.EqualFold(subdomain, reserved) {
			return true
		}
	}
	return false
}

func (u CreatePoemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
