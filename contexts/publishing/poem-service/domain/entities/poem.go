package entities

import (
	"strings"
	"time"

	domainerrors "poemclub/contexts/publishing/poem-service/domain/errors"
	"poemclub/contexts/publishing/poem-service/domain/services"
)

const (
	MaxTitleLength   = 120
	MaxContentLength = 10000
)

type Poem struct {
	PoemID    string
	Title     string
	Content   string
	Subdomain string
	Theme     string
	Style     string
	IsPublic  bool
	Views     int64
	CreatedAt time.Time
}

// NewPoem validates submission fields and derives the subdomain slug.
func NewPoem(
	poemID string,
	title string,
	content string,
	theme string,
	style string,
	isPublic bool,
	createdAt time.Time,
) (Poem, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if strings.TrimSpace(poemID) == "" || title == "" || content == "" {
		return Poem{}, domainerrors.ErrInvalidPoem
	}
	if len(title) > MaxTitleLength || len(content) > MaxContentLength {
		return Poem{}, domainerrors.ErrInvalidPoem
	}

	subdomain := services.Slug(title)
	if subdomain == "" {
		return Poem{}, domainerrors.ErrInvalidPoem
	}

	return Poem{
		PoemID:    poemID,
		Title:     title,
		Content:   content,
		Subdomain: subdomain,
		Theme:     strings.TrimSpace(theme),
		Style:     strings.TrimSpace(style),
		IsPublic:  isPublic,
		CreatedAt: createdAt.UTC(),
	}, nil
}
