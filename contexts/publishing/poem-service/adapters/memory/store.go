package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"poemclub/contexts/publishing/poem-service/domain/entities"
	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"
)

// Store is an in-memory adapter implementing poem ports for local runtime and tests.
// It is not intended as production persistence.
type Store struct {
	mu          sync.RWMutex
	poems       map[string]entities.Poem
	bySubdomain map[string]string
	sequence    uint64
	failReads   bool
}

func NewStore(seed []entities.Poem) *Store {
	s := &Store{
		poems:       make(map[string]entities.Poem, len(seed)),
		bySubdomain: make(map[string]string, len(seed)),
	}
	for _, poem := range seed {
		s.poems[poem.PoemID] = poem
		s.bySubdomain[poem.Subdomain] = poem.PoemID
	}
	return s
}

// FailReads makes read operations return an error; used to exercise
// degradation paths.
func (s *Store) FailReads(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failReads = fail
}

func (s *Store) ListPublicPoems(_ context.Context, limit int) ([]entities.Poem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failReads {
		return nil, fmt.Errorf("memory store unavailable")
	}

	items := make([]entities.Poem, 0, len(s.poems))
	for _, poem := range s.poems {
		if poem.IsPublic {
			items = append(items, poem)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].PoemID < items[j].PoemID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) GetPublicPoemBySubdomain(_ context.Context, subdomain string) (entities.Poem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failReads {
		return entities.Poem{}, fmt.Errorf("memory store unavailable")
	}

	poemID, ok := s.bySubdomain[subdomain]
	if !ok {
		return entities.Poem{}, domainerrors.ErrPoemNotFound
	}
	poem := s.poems[poemID]
	if !poem.IsPublic {
		return entities.Poem{}, domainerrors.ErrPoemNotFound
	}
	return poem, nil
}

func (s *Store) CreatePoem(_ context.Context, poem entities.Poem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.bySubdomain[poem.Subdomain]; exists {
		return domainerrors.ErrSubdomainTaken
	}
	if _, exists := s.poems[poem.PoemID]; exists {
		return fmt.Errorf("duplicate poem id %s", poem.PoemID)
	}
	s.poems[poem.PoemID] = poem
	s.bySubdomain[poem.Subdomain] = poem.PoemID
	return nil
}

func (s *Store) IncrementViews(_ context.Context, poemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	poem, ok := s.poems[poemID]
	if !ok {
		return domainerrors.ErrPoemNotFound
	}
	poem.Views++
	s.poems[poemID] = poem
	return nil
}

// GetPoem returns any poem regardless of visibility; tests use it for inspection.
func (s *Store) GetPoem(poemID string) (entities.Poem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	poem, ok := s.poems[poemID]
	return poem, ok
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	n := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("poem-%d", n), nil
}
