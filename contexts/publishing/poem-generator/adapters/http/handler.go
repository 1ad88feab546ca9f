package httpadapter

import (
	"context"
	"log/slog"

	"poemclub/contexts/publishing/poem-generator/application/commands"
	httptransport "poemclub/contexts/publishing/poem-generator/transport/http"
)

type Handler struct {
	Generate commands.GeneratePoemUseCase
	Logger   *slog.Logger
}

// GeneratePoemHandler godoc
// @Summary Generate poem text from a title
// @Tags poem-generator
// @Accept json
// @Produce json
// @Param request body httptransport.GeneratePoemRequest true "Title, optionally with (style: ..., tone: ...) options"
// @Success 200 {object} httptransport.GeneratePoemResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/generate-poem [post]
func (h Handler) GeneratePoemHandler(
	ctx context.Context,
	request httptransport.GeneratePoemRequest,
) (httptransport.GeneratePoemResponse, error) {
	result, err := h.Generate.Execute(ctx, commands.GeneratePoemCommand{Title: request.Title})
	if err != nil {
		return httptransport.GeneratePoemResponse{}, err
	}
	return httptransport.GeneratePoemResponse{
		Content: result.Poem.Content,
		Theme:   result.Poem.Theme,
		Style:   result.Poem.Style,
	}, nil
}
