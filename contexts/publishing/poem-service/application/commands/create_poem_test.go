package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"poemclub/contexts/publishing/poem-service/adapters/memory"
	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newCreateUseCase(store *memory.Store) CreatePoemUseCase {
	return CreatePoemUseCase{
		Poems:              store,
		Clock:              fixedClock{now: time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)},
		IDGenerator:        store,
		ReservedSubdomains: []string{"www", "api", "sponsor"},
	}
}

func TestCreatePoemDerivesSubdomain(t *testing.T) {
	store := memory.NewStore(nil)
	result, err := newCreateUseCase(store).Execute(context.Background(), CreatePoemCommand{
		Title:    "  Café au Lait, at Dawn ",
		Content:  "steam curls upward",
		Theme:    "nature",
		Style:    "haiku",
		IsPublic: true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if result.Poem.Subdomain != "cafe-au-lait-at-dawn" {
		t.Fatalf("unexpected subdomain %q", result.Poem.Subdomain)
	}
	if !result.Poem.CreatedAt.Equal(time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected clock time, got %s", result.Poem.CreatedAt)
	}
	if _, ok := store.GetPoem(result.Poem.PoemID); !ok {
		t.Fatal("expected poem to be stored")
	}
}

func TestCreatePoemRejectsTakenSubdomain(t *testing.T) {
	store := memory.NewStore(nil)
	useCase := newCreateUseCase(store)
	if _, err := useCase.Execute(context.Background(), CreatePoemCommand{Title: "Rain", Content: "drops", IsPublic: true}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := useCase.Execute(context.Background(), CreatePoemCommand{Title: "RAIN!", Content: "more drops", IsPublic: true})
	if !errors.Is(err, domainerrors.ErrSubdomainTaken) {
		t.Fatalf("expected ErrSubdomainTaken, got %v", err)
	}
}

func TestCreatePoemRejectsReservedSubdomain(t *testing.T) {
	store := memory.NewStore(nil)
	_, err := newCreateUseCase(store).Execute(context.Background(), CreatePoemCommand{Title: "Sponsor", Content: "words", IsPublic: true})
	if !errors.Is(err, domainerrors.ErrSubdomainReserved) {
		t.Fatalf("expected ErrSubdomainReserved, got %v", err)
	}
}

func TestCreatePoemRejectsInvalidInput(t *testing.T) {
	store := memory.NewStore(nil)
	useCase := newCreateUseCase(store)
	for _, cmd := range []CreatePoemCommand{
		{Title: "", Content: "body"},
		{Title: "Title", Content: "   "},
		{Title: "!!!", Content: "body"},
	} {
		if _, err := useCase.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrInvalidPoem) {
			t.Fatalf("expected ErrInvalidPoem for %+v, got %v", cmd, err)
		}
	}
}

func TestIncrementViewsRequiresID(t *testing.T) {
	store := memory.NewStore(nil)
	useCase := IncrementViewsUseCase{Poems: store}
	if err := useCase.Execute(context.Background(), IncrementViewsCommand{PoemID: " "}); !errors.Is(err, domainerrors.ErrInvalidPoemID) {
		t.Fatalf("expected ErrInvalidPoemID, got %v", err)
	}
	if err := useCase.Execute(context.Background(), IncrementViewsCommand{PoemID: "unknown"}); err != nil {
		t.Fatalf("expected unknown id to be swallowed, got %v", err)
	}
}

func TestIncrementViewsCountsEveryCall(t *testing.T) {
	store := memory.NewStore(nil)
	created, err := newCreateUseCase(store).Execute(context.Background(), CreatePoemCommand{Title: "Tally", Content: "one", IsPublic: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	useCase := IncrementViewsUseCase{Poems: store}
	for i := 0; i < 3; i++ {
		if err := useCase.Execute(context.Background(), IncrementViewsCommand{PoemID: created.Poem.PoemID}); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
	}
	poem, _ := store.GetPoem(created.Poem.PoemID)
	if poem.Views != 3 {
		t.Fatalf("expected 3 views, got %d", poem.Views)
	}
}
