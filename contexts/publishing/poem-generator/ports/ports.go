package ports

import (
	"context"

	"poemclub/contexts/publishing/poem-generator/domain/entities"
)

// TextGenerator produces poem text for a parsed request. Implementations
// may leave Theme or Style empty; the application layer fills them in.
type TextGenerator interface {
	Generate(ctx context.Context, request entities.Request) (entities.GeneratedPoem, error)
}
