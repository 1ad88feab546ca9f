package httpserver

import (
	"net/http"

	"poemclub/internal/platform/hostrouting"
)

// routeByHost runs the host resolver before the mux. Tenant hosts only ever
// see a redirect to their poem on the canonical host, or a 404.
func (s *Server) routeByHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		decision := hostrouting.Resolve(s.policy, r.Host, r.URL.Path)
		if decision.Kind != hostrouting.KindTenant {
			next.ServeHTTP(w, r)
			return
		}

		if decision.Redirect {
			s.logger.Debug("tenant host redirected",
				"event", "tenant_host_redirected",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"tenant", decision.Name,
			)
			http.Redirect(w, r, s.canonicalURL(decision.Path), http.StatusTemporaryRedirect)
			return
		}
		s.renderPage(w, r, http.StatusNotFound, pageMessage, pageData{
			Title:   "Not found",
			Message: "This poem lives at the root of its own address.",
		})
	})
}

func (s *Server) canonicalURL(path string) string {
	if s.policy.CanonicalDomain == "" {
		return path
	}
	return s.publicScheme + "://" + s.policy.CanonicalDomain + path
}
