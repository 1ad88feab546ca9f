package queries

import (
	"context"
	"log/slog"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

type SlotListing struct {
	Slot        entities.Slot
	AmountCents int64
	Currency    string
	Weekend     bool
}

type ListUpcomingSlotsResult struct {
	Today string
	Items []SlotListing
}

// ListUpcomingSlotsUseCase sweeps lapsed reservations and then lists every
// slot from today onward, priced.
type ListUpcomingSlotsUseCase struct {
	Slots   ports.SlotRepository
	Pricing services.Pricing
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u ListUpcomingSlotsUseCase) Execute(ctx context.Context) (ListUpcomingSlotsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	now := application.Now(u.Clock)
	today := u.Pricing.Today(now)

	if released, err := u.Slots.SweepExpired(ctx, now); err != nil {
		logger.Warn("reservation sweep before listing failed",
			"event", "sponsor_list_sweep_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"error", err.Error(),
		)
	} else if released > 0 {
		logger.Info("expired reservations released",
			"event", "sponsor_reservations_released",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"released_count", released,
		)
	}

	slots, err := u.Slots.ListFrom(ctx, today)
	if err != nil {
		logger.Error("list upcoming sponsor slots failed",
			"event", "sponsor_list_upcoming_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ListUpcomingSlotsResult{}, err
	}

	items := make([]SlotListing, 0, len(slots))
	for _, slot := range slots {
		amount, err := u.Pricing.PriceFor(slot.Date)
		if err != nil {
			continue
		}
		weekend, _ := u.Pricing.IsWeekend(slot.Date)
		items = append(items, SlotListing{
			Slot:        slot,
			AmountCents: amount,
			Currency:    u.Pricing.Currency,
			Weekend:     weekend,
		})
	}
	return ListUpcomingSlotsResult{Today: today, Items: items}, nil
}
