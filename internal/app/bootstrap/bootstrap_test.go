package bootstrap

import (
	"context"
	"log/slog"
	"testing"
	"time"

	slotbookingservice "poemclub/contexts/sponsorship/slot-booking-service"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/internal/platform/config"
)

func TestNormalizeAddr(t *testing.T) {
	tests := map[string]string{
		"":      ":8080",
		"9000":  ":9000",
		":9000": ":9000",
		" 81 ":  ":81",
	}
	for in, want := range tests {
		if got := normalizeAddr(in); got != want {
			t.Fatalf("normalizeAddr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildGeneratorModuleFallsBackToTemplates(t *testing.T) {
	module, err := buildGeneratorModule(context.Background(), config.Config{}, slog.Default())
	if err != nil {
		t.Fatalf("build generator: %v", err)
	}
	if module.Handler.Generate.Generator == nil {
		t.Fatal("expected template generator to be wired")
	}
}

func TestHostPolicyReservesSiteLabel(t *testing.T) {
	policy := hostPolicy(config.Config{
		PublicDomain:       "mereautomaton.club",
		ReservedSubdomains: []string{"www", "api", "admin"},
	})
	if !policy.IsReservedLabel("mereautomaton") || !policy.IsReservedLabel("admin") {
		t.Fatalf("expected site label and admin to be reserved: %+v", policy)
	}
	if policy.SiteLabel() != "mereautomaton" {
		t.Fatalf("unexpected site label %q", policy.SiteLabel())
	}
}

func TestClaimReturnURLPointsAtCanonicalClaimPage(t *testing.T) {
	got := claimReturnURL(config.Config{PublicDomain: "mereautomaton.club", PublicScheme: "https"})
	if got != "https://mereautomaton.club/sponsor/claim" {
		t.Fatalf("unexpected return url %q", got)
	}
}

func TestWorkerRunSeedsAndStopsOnCancel(t *testing.T) {
	slots := slotbookingservice.NewInMemoryModule(nil, slotbookingservice.Dependencies{
		Pricing:     services.Pricing{BaseCents: 15000, Currency: "ZAR", Location: time.UTC},
		SeedHorizon: 7,
	})
	worker := &WorkerApp{
		expirer:      slots.ReservationExpirer,
		seeder:       slots.SlotSeeder,
		pollInterval: time.Hour,
		logger:       slog.Default(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		listed, err := slots.Store.ListFrom(context.Background(), "0000-01-01")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(listed) == 7 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("expected 7 seeded slots, got %d", len(listed))
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean stop, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
