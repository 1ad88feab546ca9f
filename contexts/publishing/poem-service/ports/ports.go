package ports

import (
	"context"
	"time"

	"poemclub/contexts/publishing/poem-service/domain/entities"
)

// PoemRepository owns poem persistence. Uniqueness of subdomain is enforced
// by the store, not by a read-before-insert in the application layer.
type PoemRepository interface {
	ListPublicPoems(ctx context.Context, limit int) ([]entities.Poem, error)
	GetPublicPoemBySubdomain(ctx context.Context, subdomain string) (entities.Poem, error)
	// CreatePoem returns ErrSubdomainTaken when the slug already exists.
	CreatePoem(ctx context.Context, poem entities.Poem) error
	// IncrementViews must be a single atomic `views = views + 1` update.
	IncrementViews(ctx context.Context, poemID string) error
}

// Clock allows deterministic testing of created_at stamping.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts poem identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
