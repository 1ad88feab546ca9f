package httpadapter

import (
	"context"
	"log/slog"
	"net/url"

	application "poemclub/contexts/sponsorship/slot-booking-service/application"
	"poemclub/contexts/sponsorship/slot-booking-service/application/commands"
	"poemclub/contexts/sponsorship/slot-booking-service/application/queries"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
	httptransport "poemclub/contexts/sponsorship/slot-booking-service/transport/http"
)

// Handler maps HTTP DTOs to slot booking commands and queries.
type Handler struct {
	ListUpcoming  queries.ListUpcomingSlotsUseCase
	Reserve       commands.ReserveSlotUseCase
	MarkBooked    commands.MarkBookedUseCase
	Claim         commands.ClaimSlotUseCase
	RecordClick   commands.RecordClickUseCase
	TodaysSponsor commands.ServeTodaysSponsorUseCase
	Logger        *slog.Logger
}

// ListUpcomingSlotsHandler godoc
// @Summary List upcoming sponsor slots with prices
// @Tags slot-booking-service
// @Produce json
// @Success 200 {object} httptransport.ListSlotsResponse
// @Router /api/sponsor/slots [get]
func (h Handler) ListUpcomingSlotsHandler(ctx context.Context) (httptransport.ListSlotsResponse, error) {
	result, err := h.ListUpcoming.Execute(ctx)
	if err != nil {
		return httptransport.ListSlotsResponse{}, err
	}
	items := make([]httptransport.SlotResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, httptransport.SlotResponse{
			ID:          item.Slot.SlotID,
			Date:        item.Slot.Date,
			Status:      string(item.Slot.Status),
			Paid:        item.Slot.Paid,
			SponsorName: item.Slot.SponsorName,
			AmountCents: item.AmountCents,
			Amount:      services.FormatAmount(item.AmountCents),
			Currency:    item.Currency,
			Weekend:     item.Weekend,
		})
	}
	return httptransport.ListSlotsResponse{Today: result.Today, Items: items}, nil
}

// ReserveSlotHandler godoc
// @Summary Reserve a date and redirect to checkout
// @Tags slot-booking-service
// @Accept x-www-form-urlencoded,json
// @Param date formData string true "Date as YYYY-MM-DD"
// @Success 200 {object} httptransport.ReserveSlotResponse
// @Success 303 "Redirect to the payment link"
// @Failure 409 "Date already taken"
// @Router /sponsor/reserve [post]
func (h Handler) ReserveSlotHandler(
	ctx context.Context,
	request httptransport.ReserveSlotRequest,
) (httptransport.ReserveSlotResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http reserve slot received",
		"event", "sponsor_http_reserve_received",
		"module", "sponsorship/slot-booking-service",
		"layer", "transport",
		"date", request.Date,
	)

	result, err := h.Reserve.Execute(ctx, commands.ReserveSlotCommand{Date: request.Date})
	if err != nil {
		return httptransport.ReserveSlotResponse{}, err
	}
	resp := httptransport.ReserveSlotResponse{
		SlotID:      result.Slot.SlotID,
		Date:        result.Slot.Date,
		AmountCents: result.AmountCents,
		Currency:    result.Currency,
		PaymentURL:  result.PaymentURL,
		ClaimToken:  result.ClaimToken,
	}
	if result.Slot.ReservedUntil != nil {
		resp.ReservedUntil = result.Slot.ReservedUntil.UTC()
	}
	return resp, nil
}

// MarkBookedHandler records a verified payment for a slot.
func (h Handler) MarkBookedHandler(ctx context.Context, slotID string, paymentRef string) error {
	return h.MarkBooked.Execute(ctx, commands.MarkBookedCommand{SlotID: slotID, PaymentRef: paymentRef})
}

// ClaimSlotHandler godoc
// @Summary Submit sponsor content for a paid slot
// @Tags slot-booking-service
// @Accept x-www-form-urlencoded,json
// @Success 200 {object} httptransport.ClaimSlotResponse
// @Failure 409 "Slot is not paid under this reference"
// @Router /sponsor/claim [post]
func (h Handler) ClaimSlotHandler(
	ctx context.Context,
	request httptransport.ClaimSlotRequest,
) (httptransport.ClaimSlotResponse, error) {
	result, err := h.Claim.Execute(ctx, commands.ClaimSlotCommand{
		SlotID:      request.SlotID,
		PaymentRef:  request.PaymentRef,
		ClaimToken:  request.ClaimToken,
		SponsorName: request.SponsorName,
		Headline:    request.Headline,
		Body:        request.Body,
		URL:         request.URL,
		ImageURL:    request.ImageURL,
	})
	if err != nil {
		return httptransport.ClaimSlotResponse{}, err
	}
	return httptransport.ClaimSlotResponse{
		SlotID: result.Slot.SlotID,
		Date:   result.Slot.Date,
		Status: string(result.Slot.Status),
	}, nil
}

// ClickRedirect returns the Location for a sponsor click.
func (h Handler) ClickRedirect(ctx context.Context, slotID string) string {
	return h.RecordClick.Execute(ctx, commands.RecordClickCommand{SlotID: slotID}).RedirectURL
}

// TodaysSponsorView returns the sponsor block for pages, if any.
func (h Handler) TodaysSponsorView(ctx context.Context) (httptransport.SponsorView, bool) {
	result := h.TodaysSponsor.Execute(ctx)
	if !result.Found {
		return httptransport.SponsorView{}, false
	}
	return httptransport.SponsorView{
		SlotID:      result.Slot.SlotID,
		SponsorName: result.Slot.SponsorName,
		Headline:    result.Slot.Headline,
		Body:        result.Slot.Body,
		ImageURL:    result.Slot.ImageURL,
		ClickPath:   "/sponsor/click?slot=" + url.QueryEscape(result.Slot.SlotID),
	}, true
}
