package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	poemgenerator "poemclub/contexts/publishing/poem-generator"
	poemservice "poemclub/contexts/publishing/poem-service"
	paymentwebhookservice "poemclub/contexts/sponsorship/payment-webhook-service"
	slotbookingservice "poemclub/contexts/sponsorship/slot-booking-service"
	"poemclub/internal/platform/hostrouting"
	"poemclub/internal/platform/ratelimit"

	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/sync/errgroup"

	// Registers the swag doc served at /swagger/doc.json.
	_ "poemclub/internal/platform/httpserver/docs"
)

const shutdownTimeout = 10 * time.Second

// Modules are the bounded contexts served over HTTP.
type Modules struct {
	Poems     poemservice.Module
	Generator poemgenerator.Module
	Slots     slotbookingservice.Module
	Webhooks  paymentwebhookservice.Module
}

type Options struct {
	Addr   string
	Policy hostrouting.Policy
	// PublicScheme prefixes tenant redirects to the canonical host.
	PublicScheme string
	// WriteLimiter throttles poem creation and generation; nil disables it.
	WriteLimiter *ratelimit.Limiter
	Logger       *slog.Logger
}

type Server struct {
	mux          *http.ServeMux
	handler      http.Handler
	logger       *slog.Logger
	addr         string
	policy       hostrouting.Policy
	publicScheme string
	limiter      *ratelimit.Limiter
	poems        poemservice.Module
	generator    poemgenerator.Module
	slots        slotbookingservice.Module
	webhooks     paymentwebhookservice.Module
}

func New(modules Modules, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}
	scheme := strings.TrimSpace(opts.PublicScheme)
	if scheme == "" {
		scheme = "https"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		policy:       opts.Policy,
		publicScheme: scheme,
		limiter:      opts.WriteLimiter,
		poems:        modules.Poems,
		generator:    modules.Generator,
		slots:        modules.Slots,
		webhooks:     modules.Webhooks,
	}
	s.registerRoutes()
	s.handler = s.routeByHost(s.mux)
	return s
}

// Handler is the full request pipeline, host routing included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("http server starting",
			"event", "http_server_starting",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"addr", s.addr,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("http server stopping",
			"event", "http_server_stopping",
			"module", "internal/platform/httpserver",
			"layer", "platform",
		)
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /{$}", s.handleHomePage)
	s.mux.HandleFunc("GET /poem/{subdomain}", s.handlePoemPage)
	s.mux.HandleFunc("GET /sponsor", s.handleSponsorPage)
	s.mux.HandleFunc("POST /sponsor/reserve", s.handleReserveSlot)
	s.mux.HandleFunc("GET /sponsor/claim", s.handleClaimPage)
	s.mux.HandleFunc("POST /sponsor/claim", s.handleClaimSlot)
	s.mux.HandleFunc("GET /sponsor/click", s.handleSponsorClick)

	s.mux.HandleFunc("GET /api/poems", s.handleListPoems)
	s.mux.Handle("POST /api/poems", s.limiter.Wrap(http.HandlerFunc(s.handleCreatePoem)))
	s.mux.HandleFunc("POST /api/poems/{id}/view", s.handleIncrementViews)
	s.mux.Handle("POST /api/generate-poem", s.limiter.Wrap(http.HandlerFunc(s.handleGeneratePoem)))
	s.mux.HandleFunc("GET /api/sponsor/slots", s.handleListSlots)

	s.mux.HandleFunc("POST /webhooks/payment", s.handlePaymentWebhook)

	s.mux.HandleFunc("/", s.handleNotFound)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	s.renderPage(w, r, http.StatusNotFound, pageMessage, pageData{
		Title:   "Not found",
		Message: "There is no poem here.",
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// wantsJSON reports whether a form endpoint was called as an API.
func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/json")
}
