package workers

import (
	"context"
	"log/slog"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

// ReservationExpirer releases reservations that crossed reserved_until.
type ReservationExpirer struct {
	Slots  ports.SlotRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (e ReservationExpirer) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(e.Logger)

	released, err := e.Slots.SweepExpired(ctx, application.Now(e.Clock))
	if err != nil {
		logger.Error("reservation expiry sweep failed",
			"event", "sponsor_reservation_expiry_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}
	if released > 0 {
		logger.Info("reservation expiry sweep completed",
			"event", "sponsor_reservation_expiry_completed",
			"module", "sponsorship/slot-booking-service",
			"layer", "worker",
			"released_count", released,
		)
	}
	return nil
}
