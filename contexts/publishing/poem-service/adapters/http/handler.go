package httpadapter

import (
	"context"
	"log/slog"

	application "poemclub/contexts/publishing/poem-service/application"
	"poemclub/contexts/publishing/poem-service/application/commands"
	"poemclub/contexts/publishing/poem-service/application/queries"
	"poemclub/contexts/publishing/poem-service/domain/entities"
	httptransport "poemclub/contexts/publishing/poem-service/transport/http"
)

// Handler maps HTTP DTOs to poem commands and queries.
type Handler struct {
	ListRecent     queries.ListRecentPoemsUseCase
	GetBySubdomain queries.GetPoemBySubdomainUseCase
	CreatePoem     commands.CreatePoemUseCase
	IncrementViews commands.IncrementViewsUseCase
	Logger         *slog.Logger
}

// ListRecentPoemsHandler godoc
// @Summary List recent public poems
// @Tags poem-service
// @Produce json
// @Param limit query int false "Maximum number of poems (max 100)"
// @Success 200 {object} httptransport.ListPoemsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/poems [get]
func (h Handler) ListRecentPoemsHandler(ctx context.Context, limit int) httptransport.ListPoemsResponse {
	result := h.ListRecent.Execute(ctx, queries.ListRecentPoemsQuery{Limit: limit})
	items := make([]httptransport.PoemResponse, 0, len(result.Items))
	for _, poem := range result.Items {
		items = append(items, ToPoemResponse(poem))
	}
	return httptransport.ListPoemsResponse{Items: items}
}

// RecentPoems returns entities for server-rendered pages.
func (h Handler) RecentPoems(ctx context.Context, limit int) []entities.Poem {
	return h.ListRecent.Execute(ctx, queries.ListRecentPoemsQuery{Limit: limit}).Items
}

// PoemBySubdomain returns the public poem for a tenant label.
func (h Handler) PoemBySubdomain(ctx context.Context, subdomain string) (entities.Poem, bool) {
	result := h.GetBySubdomain.Execute(ctx, queries.GetPoemBySubdomainQuery{Subdomain: subdomain})
	return result.Poem, result.Found
}

// CreatePoemHandler godoc
// @Summary Publish a poem under its own subdomain
// @Tags poem-service
// @Accept json
// @Produce json
// @Param request body httptransport.CreatePoemRequest true "Poem"
// @Success 201 {object} httptransport.CreatePoemResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 429 {object} httptransport.ErrorResponse
// @Router /api/poems [post]
func (h Handler) CreatePoemHandler(
	ctx context.Context,
	request httptransport.CreatePoemRequest,
) (httptransport.CreatePoemResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http create poem received",
		"event", "poem_http_create_received",
		"module", "publishing/poem-service",
		"layer", "transport",
	)

	isPublic := true
	if request.IsPublic != nil {
		isPublic = *request.IsPublic
	}
	result, err := h.CreatePoem.Execute(ctx, commands.CreatePoemCommand{
		Title:    request.Title,
		Content:  request.Content,
		Theme:    request.Theme,
		Style:    request.Style,
		IsPublic: isPublic,
	})
	if err != nil {
		return httptransport.CreatePoemResponse{}, err
	}
	return httptransport.CreatePoemResponse{
		Poem: ToPoemResponse(result.Poem),
		URL:  "/poem/" + result.Poem.Subdomain,
	}, nil
}

// IncrementViewsHandler godoc
// @Summary Count one poem view
// @Tags poem-service
// @Produce json
// @Param id path string true "Poem id"
// @Success 200 {object} httptransport.IncrementViewsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/poems/{id}/view [post]
func (h Handler) IncrementViewsHandler(ctx context.Context, poemID string) (httptransport.IncrementViewsResponse, error) {
	if err := h.IncrementViews.Execute(ctx, commands.IncrementViewsCommand{PoemID: poemID}); err != nil {
		return httptransport.IncrementViewsResponse{}, err
	}
	return httptransport.IncrementViewsResponse{Success: true}, nil
}

func ToPoemResponse(poem entities.Poem) httptransport.PoemResponse {
	return httptransport.PoemResponse{
		ID:        poem.PoemID,
		Title:     poem.Title,
		Content:   poem.Content,
		Subdomain: poem.Subdomain,
		Theme:     poem.Theme,
		Style:     poem.Style,
		IsPublic:  poem.IsPublic,
		Views:     poem.Views,
		CreatedAt: poem.CreatedAt,
	}
}
