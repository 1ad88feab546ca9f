package httpserver

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	poemhttp "poemclub/contexts/publishing/poem-service/transport/http"
	slothttp "poemclub/contexts/sponsorship/slot-booking-service/transport/http"
)

const (
	pageHome    = "home.html"
	pagePoem    = "poem.html"
	pageSponsor = "sponsor.html"
	pageClaim   = "claim.html"
	pageMessage = "message.html"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = mustParsePages(pageHome, pagePoem, pageSponsor, pageClaim, pageMessage)

// pageData is the view model shared by every page; each page reads the
// fields it needs.
type pageData struct {
	Title   string
	Message string
	Error   string
	Sponsor *slothttp.SponsorView

	Poems []poemhttp.PoemResponse
	Poem  poemhttp.PoemResponse

	Today string
	Slots []slothttp.SlotResponse
	Claim slothttp.ClaimSlotRequest
}

func mustParsePages(names ...string) map[string]*template.Template {
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		pages[name] = template.Must(template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return pages
}

// renderPage attaches today's sponsor, which also counts an impression, and
// renders into a buffer so a template error never leaves a half-written page.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	if view, ok := s.slots.Handler.TodaysSponsorView(r.Context()); ok {
		data.Sponsor = &view
	}

	tmpl, ok := pageTemplates[name]
	if !ok {
		s.writePageFailure(w, fmt.Errorf("unknown page %q", name))
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.writePageFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) writePageFailure(w http.ResponseWriter, err error) {
	s.logger.Error("page render failed",
		"event", "page_render_failed",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"error", err.Error(),
	)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
