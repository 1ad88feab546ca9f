package uuidadapter

import (
	"context"

	"github.com/google/uuid"
)

// Generator implements ports.IDGenerator using RFC 4122 UUID v4 values.
type Generator struct{}

func (Generator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
