package commands

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	"poemclub/contexts/sponsorship/slot-booking-service/ports"
)

const homePath = "/"

type RecordClickCommand struct {
	SlotID string
}

type RecordClickResult struct {
	RedirectURL string
}

// RecordClickUseCase counts a sponsor click and resolves the outbound URL.
// Anything missing sends the visitor home.
type RecordClickUseCase struct {
	Slots     ports.SlotRepository
	Pricing   services.Pricing
	Clock     ports.Clock
	UTMSource string
	Logger    *slog.Logger
}

func (u RecordClickUseCase) Execute(ctx context.Context, cmd RecordClickCommand) RecordClickResult {
	logger := application.ResolveLogger(u.Logger)
	slotID := strings.TrimSpace(cmd.SlotID)
	if slotID == "" {
		return RecordClickResult{RedirectURL: homePath}
	}

	slot, err := u.Slots.GetSlot(ctx, slotID)
	if err != nil || strings.TrimSpace(slot.URL) == "" {
		return RecordClickResult{RedirectURL: homePath}
	}

	if err := u.Slots.IncrementClicks(ctx, slot.SlotID); err != nil {
		logger.Warn("sponsor click increment failed",
			"event", "sponsor_click_increment_failed",
			"module", "sponsorship/slot-booking-service",
			"layer", "application",
			"slot_id", slot.SlotID,
			"error", err.Error(),
		)
	}

	return RecordClickResult{
		RedirectURL: WithUTM(slot.URL, u.UTMSource, u.Pricing.Today(application.Now(u.Clock))),
	}
}

// WithUTM appends sponsor campaign parameters, joining with '?' or '&'.
func WithUTM(target string, source string, campaign string) string {
	params := url.Values{}
	params.Set("utm_source", source)
	params.Set("utm_medium", "sponsor")
	params.Set("utm_campaign", campaign)

	separator := "?"
	if strings.Contains(target, "?") {
		separator = "&"
	}
	return target + separator + params.Encode()
}
