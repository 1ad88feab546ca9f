package workers

import (
	"context"
	"log/slog"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

const defaultHorizonDays = 60

// SlotSeeder keeps an available row for each of the next HorizonDays days.
// Existing rows are never touched.
type SlotSeeder struct {
	Slots       ports.SlotRepository
	Pricing     services.Pricing
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	HorizonDays int
	Logger      *slog.Logger
}

func (s SlotSeeder) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(s.Logger)
	now := application.Now(s.Clock)
	horizon := s.HorizonDays
	if horizon <= 0 {
		horizon = defaultHorizonDays
	}

	today := s.Pricing.Today(now)
	slots := make([]entities.Slot, 0, horizon)
	for offset := 0; offset < horizon; offset++ {
		date, err := s.Pricing.AddDays(today, offset)
		if err != nil {
			return err
		}
		slotID, err := s.IDGenerator.NewID(ctx)
		if err != nil {
			return err
		}
		slots = append(slots, entities.Slot{
			SlotID:    slotID,
			Date:      date,
			Status:    entities.StatusAvailable,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	inserted, err := s.Slots.SeedSlots(ctx, slots)
	if err != nil {
		logger.Error("sponsor slot seeding failed",
			"event", "sponsor_slot_seed_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if inserted > 0 {
		logger.Info("sponsor slots seeded",
			"event", "sponsor_slot_seed_completed",
			"module", "sponsorship/slot-booking-service",
			"layer", "worker",
			"inserted_count", inserted,
			"horizon_days", horizon,
		)
	}
	return nil
}
