package commands

import (
	"context"
	"log/slog"

	application "poemclub/contexts/sponsorship/payment-webhook-service/application"
	"poemclub/contexts/sponsorship/payment-webhook-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/payment-webhook-service/domain/errors"
	"poemclub/contexts/sponsorship/payment-webhook-service/domain/services"
	"poemclub/contexts/sponsorship/payment-webhook-service/ports"
)

type ConfirmPaymentCommand struct {
	Body      []byte
	Signature string
}

type ConfirmPaymentResult struct {
	Event entities.PaymentEvent
}

// ConfirmPaymentUseCase verifies a provider callback and books the slot it
// names. Rejections are logged at warn so they can be reconciled by hand.
type ConfirmPaymentUseCase struct {
	Secret      string
	Booker      ports.SlotBooker
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (ConfirmPaymentResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if !services.Verify(u.Secret, cmd.Body, cmd.Signature) {
		logger.Warn("payment webhook signature rejected",
			"event", "payment_webhook_signature_rejected",
			"module", "sponsorship/payment-webhook-service",
			"layer", "application",
			"has_signature", cmd.Signature != "",
			"body_bytes", len(cmd.Body),
		)
		return ConfirmPaymentResult{}, domainerrors.ErrInvalidSignature
	}

	event, err := entities.ParsePaymentEvent(cmd.Body)
	if err != nil {
		logger.Warn("payment webhook payload rejected",
			"event", "payment_webhook_payload_rejected",
			"module", "sponsorship/payment-webhook-service",
			"layer", "application",
			"error", err.Error(),
		)
		return ConfirmPaymentResult{}, err
	}
	if event.PaymentRef == "" {
		ref, err := u.IDGenerator.NewID(ctx)
		if err != nil {
			return ConfirmPaymentResult{}, err
		}
		event.PaymentRef = ref
	}

	if err := u.Booker.MarkBooked(ctx, event.SlotID, event.PaymentRef); err != nil {
		logger.Error("payment webhook booking failed",
			"event", "payment_webhook_booking_failed",
			"module", "sponsorship/payment-webhook-service",
			"layer", "application",
			"slot_id", event.SlotID,
			"payment_ref", event.PaymentRef,
			"error", err.Error(),
		)
		return ConfirmPaymentResult{}, err
	}

	logger.Info("payment webhook confirmed slot",
		"event", "payment_webhook_confirmed",
		"module", "sponsorship/payment-webhook-service",
		"layer", "application",
		"slot_id", event.SlotID,
		"payment_ref", event.PaymentRef,
	)
	return ConfirmPaymentResult{Event: event}, nil
}
