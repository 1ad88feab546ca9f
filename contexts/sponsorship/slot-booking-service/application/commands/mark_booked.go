package commands

import (
	"context"
	"log/slog"
	"strings"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

type MarkBookedCommand struct {
	SlotID     string
	PaymentRef string
}

// MarkBookedUseCase records a confirmed payment. Callers must have verified
// the payment event; no prior state is checked here.
type MarkBookedUseCase struct {
	Slots  ports.SlotRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

func (u MarkBookedUseCase) Execute(ctx context.Context, cmd MarkBookedCommand) error {
	logger := application.ResolveLogger(u.Logger)
	slotID := strings.TrimSpace(cmd.SlotID)
	if slotID == "" {
		return domainerrors.ErrInvalidSlotID
	}
	paymentRef := strings.TrimSpace(cmd.PaymentRef)

	if err := u.Slots.MarkBooked(ctx, slotID, paymentRef, application.Now(u.Clock)); err != nil {
		logger.Error("mark sponsor slot booked failed",
			"event", "sponsor_slot_mark_booked_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"slot_id", slotID,
			"payment_ref", paymentRef,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("sponsor slot booked",
		"event", "sponsor_slot_booked",
		"module", "sponsorship/slot-booking-service",
		"layer", "application",
		"slot_id", slotID,
		"payment_ref", paymentRef,
	)
	return nil
}
