package slotbookingservice

import (
	"log/slog"
	"time"

	httpadapter "poemclub/contexts/sponsorship/slot-booking-service/adapters/http"
	"poemclub/contexts/sponsorship/slot-booking-service/adapters/memory"
	"poemclub/contexts/sponsorship/slot-booking-service/application/commands"
	"poemclub/contexts/sponsorship/slot-booking-service/application/queries"
	"poemclub/contexts/sponsorship/slot-booking-service/application/workers"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

// Module is the slot-booking-service composition root exposed to runtime wiring.
type Module struct {
	Handler            httpadapter.Handler
	ReservationExpirer workers.ReservationExpirer
	SlotSeeder         workers.SlotSeeder
	Store              *memory.Store
}

type Dependencies struct {
	Repository     ports.SlotRepository
	PaymentLinks   ports.PaymentLinkBuilder
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	Pricing        services.Pricing
	ReservationTTL time.Duration
	SeedHorizon    int
	// ClaimSecret signs the claim tokens handed out at checkout.
	ClaimSecret string
	// UTMSource tags outbound sponsor clicks.
	UTMSource string
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	claimTokens := services.ClaimTokens{Secret: deps.ClaimSecret}
	return Module{
		Handler: httpadapter.Handler{
			ListUpcoming: queries.ListUpcomingSlotsUseCase{
				Slots:   deps.Repository,
				Pricing: deps.Pricing,
				Clock:   deps.Clock,
				Logger:  deps.Logger,
			},
			Reserve: commands.ReserveSlotUseCase{
				Slots:          deps.Repository,
				Links:          deps.PaymentLinks,
				Pricing:        deps.Pricing,
				ClaimTokens:    claimTokens,
				Clock:          deps.Clock,
				ReservationTTL: deps.ReservationTTL,
				Logger:         deps.Logger,
			},
			MarkBooked: commands.MarkBookedUseCase{
				Slots:  deps.Repository,
				Clock:  deps.Clock,
				Logger: deps.Logger,
			},
			Claim: commands.ClaimSlotUseCase{
				Slots:       deps.Repository,
				ClaimTokens: claimTokens,
				Clock:       deps.Clock,
				Logger:      deps.Logger,
			},
			RecordClick: commands.RecordClickUseCase{
				Slots:     deps.Repository,
				Pricing:   deps.Pricing,
				Clock:     deps.Clock,
				UTMSource: deps.UTMSource,
				Logger:    deps.Logger,
			},
			TodaysSponsor: commands.ServeTodaysSponsorUseCase{
				Slots:   deps.Repository,
				Pricing: deps.Pricing,
				Clock:   deps.Clock,
				Logger:  deps.Logger,
			},
			Logger: deps.Logger,
		},
		ReservationExpirer: workers.ReservationExpirer{
			Slots:  deps.Repository,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
		SlotSeeder: workers.SlotSeeder{
			Slots:       deps.Repository,
			Pricing:     deps.Pricing,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			HorizonDays: deps.SeedHorizon,
			Logger:      deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(seed []entities.Slot, deps Dependencies) Module {
	store := memory.NewStore(seed)
	deps.Repository = store
	if deps.Clock == nil {
		deps.Clock = store
	}
	if deps.IDGenerator == nil {
		deps.IDGenerator = store
	}
	module := NewModule(deps)
	module.Store = store
	return module
}
