package commands

import (
	"context"
	"errors"
	"log/slog"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

type ServeTodaysSponsorResult struct {
	Slot  entities.Slot
	Found bool
}

// ServeTodaysSponsorUseCase returns today's approved sponsor and counts one
// impression. Failures only hide the sponsor block.
type ServeTodaysSponsorUseCase struct {
	Slots   ports.SlotRepository
	Pricing services.Pricing
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (u ServeTodaysSponsorUseCase) Execute(ctx context.Context) ServeTodaysSponsorResult {
	logger := application.ResolveLogger(u.Logger)
	today := u.Pricing.Today(application.Now(u.Clock))

	slot, err := u.Slots.GetApprovedForDate(ctx, today)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrSlotNotFound) {
			logger.Warn("todays sponsor lookup failed",
				"event", "sponsor_today_lookup_failed",
				"module", "sponsorship/slot-booking-service",
				"layer", "application",
				"date", today,
				"error", err.Error(),
			)
		}
		return ServeTodaysSponsorResult{}
	}

	if err := u.Slots.IncrementImpressions(ctx, slot.SlotID); err != nil {
		logger.Warn("sponsor impression increment failed",
			"event", "sponsor_impression_increment_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"slot_id", slot.SlotID,
			"error", err.Error(),
		)
	}
	return ServeTodaysSponsorResult{Slot: slot, Found: true}
}
