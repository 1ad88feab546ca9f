package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

type ClaimSlotCommand struct {
	SlotID      string
	PaymentRef  string
	ClaimToken  string
	SponsorName string
	Headline    string
	Body        string
	URL         string
	ImageURL    string
}

type ClaimSlotResult struct {
	Slot entities.Slot
}

// ClaimSlotUseCase publishes sponsor content on a paid slot. The sponsor
// proves ownership with the claim token issued at checkout, or with the
// payment reference the provider sent with the webhook.
type ClaimSlotUseCase struct {
	Slots       ports.SlotRepository
	ClaimTokens services.ClaimTokens
	Clock       ports.Clock
	Logger      *slog.Logger
}

func (u ClaimSlotUseCase) Execute(ctx context.Context, cmd ClaimSlotCommand) (ClaimSlotResult, error) {
	logger := application.ResolveLogger(u.Logger)
	slotID := strings.TrimSpace(cmd.SlotID)
	if slotID == "" {
		return ClaimSlotResult{}, domainerrors.ErrInvalidSlotID
	}
	paymentRef := strings.TrimSpace(cmd.PaymentRef)
	claimToken := strings.TrimSpace(cmd.ClaimToken)
	if paymentRef == "" && claimToken == "" {
		return ClaimSlotResult{}, domainerrors.ErrSlotNotClaimable
	}
	content, err := entities.NewSponsorContent(cmd.SponsorName, cmd.Headline, cmd.Body, cmd.URL, cmd.ImageURL)
	if err != nil {
		return ClaimSlotResult{}, err
	}

	if claimToken != "" {
		paymentRef, err = u.recordedPaymentRef(ctx, slotID, claimToken)
		if err != nil {
			logger.Warn("sponsor slot claim token rejected",
				"event", "sponsor_slot_claim_token_rejected",
				"module", "sponsorship/slot-booking-service",
				"layer", "application",
				"slot_id", slotID,
				"error", err.Error(),
			)
			return ClaimSlotResult{}, err
		}
	}

	slot, err := u.Slots.Claim(ctx, slotID, paymentRef, content, application.Now(u.Clock))
	if err != nil {
		logger.Warn("sponsor slot claim rejected",
			"event", "sponsor_slot_claim_rejected",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"slot_id", slotID,
			"error", err.Error(),
		)
		return ClaimSlotResult{}, err
	}

	logger.Info("sponsor slot approved",
		"event", "sponsor_slot_approved",
		"module", "sponsorship/slot-booking-service",
		"layer", "application",
		"slot_id", slot.SlotID,
		"date", slot.Date,
	)
	return ClaimSlotResult{Slot: slot}, nil
}

// recordedPaymentRef checks the token and returns the reference the webhook
// stored, so the conditional update still pins the row it was read from.
func (u ClaimSlotUseCase) recordedPaymentRef(ctx context.Context, slotID string, token string) (string, error) {
	if !u.ClaimTokens.Valid(slotID, token) {
		return "", domainerrors.ErrSlotNotClaimable
	}
	slot, err := u.Slots.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSlotNotFound) {
			return "", domainerrors.ErrSlotNotClaimable
		}
		return "", err
	}
	if !slot.Claimable() || slot.PaymentRef == "" {
		return "", domainerrors.ErrSlotNotClaimable
	}
	return slot.PaymentRef, nil
}
