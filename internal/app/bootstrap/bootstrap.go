package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	poemgenerator "poemclub/contexts/publishing/poem-generator"
	genaiadapter "poemclub/contexts/publishing/poem-generator/adapters/genai"
	poemservice "poemclub/contexts/publishing/poem-service"
	poempostgres "poemclub/contexts/publishing/poem-service/adapters/postgres"
	paymentwebhookservice "poemclub/contexts/sponsorship/payment-webhook-service"
	uuidadapter "poemclub/contexts/sponsorship/payment-webhook-service/adapters/uuid"
	webhookports "poemclub/contexts/sponsorship/payment-webhook-service/ports"
	slotbookingservice "poemclub/contexts/sponsorship/slot-booking-service"
	"poemclub/contexts/sponsorship/slot-booking-service/adapters/paymentlink"
	slotpostgres "poemclub/contexts/sponsorship/slot-booking-service/adapters/postgres"
	"poemclub/contexts/sponsorship/slot-booking-service/application/workers"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/internal/platform/config"
	"poemclub/internal/platform/db"
	"poemclub/internal/platform/hostrouting"
	"poemclub/internal/platform/httpserver"
	"poemclub/internal/platform/ratelimit"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	database *db.Database
	limiter  *ratelimit.Limiter
	seeder   workers.SlotSeeder
	logger   *slog.Logger
}

type WorkerApp struct {
	database     *db.Database
	expirer      workers.ReservationExpirer
	seeder       workers.SlotSeeder
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI(ctx context.Context) (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	database, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	policy := hostPolicy(cfg)
	poemRepo := poempostgres.NewRepository(database.DB, logger)
	if cfg.AutoMigrate {
		if err := poemRepo.Migrate(ctx); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("migrate poems: %w", err)
		}
	}
	poems := poemservice.NewModule(poemservice.Dependencies{
		Repository:         poemRepo,
		Clock:              poempostgres.SystemClock{},
		IDGenerator:        poempostgres.UUIDGenerator{},
		ReservedSubdomains: append(append([]string(nil), cfg.ReservedSubdomains...), policy.SiteLabel()),
		Logger:             logger,
	})

	slots := buildSlotModule(cfg, database, policy, logger)

	webhooks := paymentwebhookservice.NewModule(paymentwebhookservice.Dependencies{
		Secret:      cfg.PaymentWebhookSecret,
		Booker:      webhookports.SlotBookerFunc(slots.Handler.MarkBookedHandler),
		IDGenerator: uuidadapter.Generator{},
		Logger:      logger,
	})
	if strings.TrimSpace(cfg.PaymentWebhookSecret) == "" {
		logger.Warn("payment webhook secret is not configured; every webhook will be rejected",
			"event", "bootstrap_webhook_secret_missing",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}

	generator, err := buildGeneratorModule(ctx, cfg, logger)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	limiter, err := ratelimit.New(ctx, ratelimit.Options{
		Rate:               cfg.GenerateRateLimit,
		RedisURL:           cfg.RedisURL,
		Prefix:             cfg.ServiceName,
		TrustForwardHeader: cfg.RateLimitTrustProxy,
		Logger:             logger,
	})
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	server := httpserver.New(httpserver.Modules{
		Poems:     poems,
		Generator: generator,
		Slots:     slots,
		Webhooks:  webhooks,
	}, httpserver.Options{
		Addr:         normalizeAddr(cfg.HTTPPort),
		Policy:       policy,
		PublicScheme: cfg.PublicScheme,
		WriteLimiter: limiter,
		Logger:       logger,
	})
	return &APIApp{
		server:   server,
		database: database,
		limiter:  limiter,
		seeder:   slots.SlotSeeder,
		logger:   logger,
	}, nil
}

func BuildWorker(ctx context.Context) (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	database, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	slots := buildSlotModule(cfg, database, hostPolicy(cfg), logger)
	pollInterval := cfg.SweepInterval
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}
	return &WorkerApp{
		database:     database,
		expirer:      slots.ReservationExpirer,
		seeder:       slots.SlotSeeder,
		pollInterval: pollInterval,
		logger:       logger,
	}, nil
}

func openDatabase(ctx context.Context, cfg config.Config, logger *slog.Logger) (*db.Database, error) {
	var (
		database *db.Database
		err      error
	)
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		database, err = db.ConnectSQLite(cfg.SQLitePath)
	default:
		database, err = db.Connect(cfg.PostgresDSN)
	}
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := slotpostgres.NewRepository(database.DB, logger).Migrate(ctx); err != nil {
			_ = database.Close()
			return nil, fmt.Errorf("migrate sponsor slots: %w", err)
		}
	}
	logger.Info("database connected",
		"event", "bootstrap_database_connected",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"driver", database.Driver,
	)
	return database, nil
}

func hostPolicy(cfg config.Config) hostrouting.Policy {
	return hostrouting.NewPolicy(cfg.PublicDomain, cfg.ReservedSubdomains, cfg.DevHosts, cfg.PreviewHostSuffixes)
}

func buildSlotModule(cfg config.Config, database *db.Database, policy hostrouting.Policy, logger *slog.Logger) slotbookingservice.Module {
	if cfg.ClaimSecret() == "" {
		logger.Warn("no claim secret configured; sponsors can only claim with the provider payment reference",
			"event", "bootstrap_claim_secret_missing",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	if strings.TrimSpace(cfg.PaymentLinkBase) == "" {
		logger.Warn("payment link base is not configured; reservations cannot check out",
			"event", "bootstrap_payment_link_missing",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return slotbookingservice.NewModule(slotbookingservice.Dependencies{
		Repository: slotpostgres.NewRepository(database.DB, logger),
		PaymentLinks: paymentlink.Builder{
			Base:      cfg.PaymentLinkBase,
			ReturnURL: claimReturnURL(cfg),
		},
		Clock:       slotpostgres.SystemClock{},
		IDGenerator: slotpostgres.UUIDGenerator{},
		Pricing: services.Pricing{
			BaseCents:             cfg.BasePriceCents,
			WeekendSurchargeCents: cfg.WeekendSurchargeCents,
			Currency:              cfg.Currency,
			Location:              cfg.Location(),
		},
		ReservationTTL: cfg.ReservationTTL,
		SeedHorizon:    cfg.SeedHorizonDays,
		ClaimSecret:    cfg.ClaimSecret(),
		UTMSource:      policy.SiteLabel(),
		Logger:         logger,
	})
}

// claimReturnURL is where the provider sends the sponsor after checkout.
func claimReturnURL(cfg config.Config) string {
	scheme := strings.TrimSpace(cfg.PublicScheme)
	if scheme == "" {
		scheme = "https"
	}
	return scheme + "://" + cfg.PublicDomain + "/sponsor/claim"
}

// buildGeneratorModule uses Gemini when a key is configured and the offline
// template table otherwise.
func buildGeneratorModule(ctx context.Context, cfg config.Config, logger *slog.Logger) (poemgenerator.Module, error) {
	if strings.TrimSpace(cfg.GenAIAPIKey) == "" {
		logger.Info("poem generator using templates",
			"event", "bootstrap_generator_templates",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		return poemgenerator.NewTemplateModule(logger), nil
	}
	generator, err := genaiadapter.NewGenerator(ctx, cfg.GenAIAPIKey, cfg.GenAIModel, logger)
	if err != nil {
		return poemgenerator.Module{}, err
	}
	return poemgenerator.NewModule(poemgenerator.Dependencies{
		Generator: generator,
		Logger:    logger,
	}), nil
}

// Run seeds the slot calendar once so a fresh install can take bookings
// before the worker's first pass, then serves until ctx is cancelled.
func (a *APIApp) Run(ctx context.Context) error {
	if err := a.seeder.RunOnce(ctx); err != nil {
		a.logger.Warn("initial slot seeding failed",
			"event", "bootstrap_initial_seed_failed",
			"module", "internal/app/bootstrap",
			"layer", "platform",
			"error", err.Error(),
		)
	}
	a.logger.Info("api app started",
		"event", "bootstrap_api_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
	)
	return a.server.Run(ctx)
}

func (a *APIApp) Close() error {
	return errors.Join(a.limiter.Close(), a.database.Close())
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.runOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) runOnce(ctx context.Context) error {
	if err := w.expirer.RunOnce(ctx); err != nil {
		return err
	}
	return w.seeder.RunOnce(ctx)
}

func (w *WorkerApp) Close() error {
	return w.database.Close()
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
