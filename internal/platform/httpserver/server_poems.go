package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	generatorerrors "poemclub/contexts/publishing/poem-generator/domain/errors"
	generatorhttp "poemclub/contexts/publishing/poem-generator/transport/http"
	poemadapter "poemclub/contexts/publishing/poem-service/adapters/http"
	poemerrors "poemclub/contexts/publishing/poem-service/domain/errors"
	poemhttp "poemclub/contexts/publishing/poem-service/transport/http"
)

const homePoemLimit = 12

func (s *Server) handleHomePage(w http.ResponseWriter, r *http.Request) {
	poems := s.poems.Handler.RecentPoems(r.Context(), homePoemLimit)
	items := make([]poemhttp.PoemResponse, 0, len(poems))
	for _, poem := range poems {
		items = append(items, poemadapter.ToPoemResponse(poem))
	}
	s.renderPage(w, r, http.StatusOK, pageHome, pageData{Poems: items})
}

func (s *Server) handlePoemPage(w http.ResponseWriter, r *http.Request) {
	poem, ok := s.poems.Handler.PoemBySubdomain(r.Context(), r.PathValue("subdomain"))
	if !ok {
		s.renderPage(w, r, http.StatusNotFound, pageMessage, pageData{
			Title:   "Not found",
			Message: "That poem does not exist, or it is private.",
		})
		return
	}
	s.renderPage(w, r, http.StatusOK, pagePoem, pageData{
		Title: poem.Title,
		Poem:  poemadapter.ToPoemResponse(poem),
	})
}

func (s *Server) handleListPoems(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitRaw := r.URL.Query().Get("limit"); limitRaw != "" {
		parsed, err := strconv.Atoi(limitRaw)
		if err != nil {
			writePoemError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		limit = parsed
	}
	writeJSON(w, http.StatusOK, s.poems.Handler.ListRecentPoemsHandler(r.Context(), limit))
}

func (s *Server) handleCreatePoem(w http.ResponseWriter, r *http.Request) {
	var req poemhttp.CreatePoemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePoemError(w, http.StatusBadRequest, "invalid_request", "invalid JSON payload")
		return
	}
	resp, err := s.poems.Handler.CreatePoemHandler(r.Context(), req)
	if err != nil {
		s.writePoemDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleIncrementViews(w http.ResponseWriter, r *http.Request) {
	resp, err := s.poems.Handler.IncrementViewsHandler(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writePoemDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGeneratePoem(w http.ResponseWriter, r *http.Request) {
	var req generatorhttp.GeneratePoemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON payload")
		return
	}
	resp, err := s.generator.Handler.GeneratePoemHandler(r.Context(), req)
	if err != nil {
		s.writeGeneratorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writePoemDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, poemerrors.ErrPoemNotFound):
		writePoemError(w, http.StatusNotFound, "poem_not_found", err.Error())
	case errors.Is(err, poemerrors.ErrInvalidPoem),
		errors.Is(err, poemerrors.ErrInvalidPoemID):
		writePoemError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, poemerrors.ErrSubdomainTaken):
		writePoemError(w, http.StatusConflict, "subdomain_taken", "that title is taken, try another")
	case errors.Is(err, poemerrors.ErrSubdomainReserved):
		writePoemError(w, http.StatusConflict, "subdomain_reserved", "that title is reserved, try another")
	default:
		s.logger.Error("poem request failed",
			"event", "poem_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writePoemError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) writeGeneratorDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generatorerrors.ErrInvalidTitle):
		writeError(w, http.StatusBadRequest, "invalid_title", err.Error())
	case errors.Is(err, generatorerrors.ErrUpstreamFailed):
		writeError(w, http.StatusBadGateway, "generation_failed", "poem generation is unavailable, try again")
	default:
		s.logger.Error("generate poem request failed",
			"event", "generate_poem_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePoemError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, poemhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
