package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

const DefaultReservationTTL = 30 * time.Minute

type ReserveSlotCommand struct {
	Date string
}

type ReserveSlotResult struct {
	Slot        entities.Slot
	AmountCents int64
	Currency    string
	PaymentURL  string
	// ClaimToken authorizes the content claim once the slot is paid. Empty
	// when claim tokens are not configured.
	ClaimToken string
}

type ReserveSlotUseCase struct {
	Slots          ports.SlotRepository
	Links          ports.PaymentLinkBuilder
	Pricing        services.Pricing
	ClaimTokens    services.ClaimTokens
	Clock          ports.Clock
	ReservationTTL time.Duration
	Logger         *slog.Logger
}

// Execute releases lapsed reservations, then claims the date with a single
// conditional update. The losing side of a race gets ErrSlotConflict.
func (u ReserveSlotUseCase) Execute(ctx context.Context, cmd ReserveSlotCommand) (ReserveSlotResult, error) {
	logger := application.ResolveLogger(u.Logger)
	now := application.Now(u.Clock)

	day, err := u.Pricing.ParseDate(cmd.Date)
	if err != nil {
		return ReserveSlotResult{}, err
	}
	date := day.Format(services.DateLayout)
	if date < u.Pricing.Today(now) {
		return ReserveSlotResult{}, domainerrors.ErrInvalidDate
	}

	if _, err := u.Slots.SweepExpired(ctx, now); err != nil {
		logger.Warn("reservation sweep before reserve failed",
			"event", "sponsor_reserve_sweep_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"error", err.Error(),
		)
	}

	ttl := u.ReservationTTL
	if ttl <= 0 {
		ttl = DefaultReservationTTL
	}
	slot, err := u.Slots.ReserveAvailable(ctx, date, now.Add(ttl), now)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSlotConflict) {
			logger.Info("sponsor slot reservation lost",
				"event", "sponsor_slot_reservation_conflict",
				"module", "sponsorship/slot-booking-service",
				"layer", "application",
				"date", date,
			)
		} else {
			logger.Error("sponsor slot reservation failed",
				"event", "sponsor_slot_reservation_failed",
				"module", "sponsorship/slot-booking-service",
				"layer", "application",
				"date", date,
				"error", err.Error(),
			)
		}
		return ReserveSlotResult{}, err
	}

	amount, err := u.Pricing.PriceFor(slot.Date)
	if err != nil {
		return ReserveSlotResult{}, err
	}
	claimToken := u.ClaimTokens.Issue(slot.SlotID)
	paymentURL, err := u.Links.BuildLink(slot, amount, u.Pricing.Currency, claimToken)
	if err != nil {
		logger.Error("payment link build failed",
			"event", "sponsor_payment_link_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"slot_id", slot.SlotID,
			"error", err.Error(),
		)
		return ReserveSlotResult{}, fmt.Errorf("%w: %v", domainerrors.ErrPaymentLinkUnavailable, err)
	}

	logger.Info("sponsor slot reserved",
		"event", "sponsor_slot_reserved",
		"module", "sponsorship/slot-booking-service",
		"layer", "application",
		"slot_id", slot.SlotID,
		"date", slot.Date,
		"amount_cents", amount,
	)
	return ReserveSlotResult{
		Slot:        slot,
		AmountCents: amount,
		Currency:    u.Pricing.Currency,
		PaymentURL:  paymentURL,
		ClaimToken:  claimToken,
	}, nil
}
