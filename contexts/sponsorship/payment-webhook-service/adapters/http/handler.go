package httpadapter

import (
	"context"
	"log/slog"

	"poemclub/contexts/sponsorship/payment-webhook-service/application/commands"
	httptransport "poemclub/contexts/sponsorship/payment-webhook-service/transport/http"
)

type Handler struct {
	Confirm commands.ConfirmPaymentUseCase
	Logger  *slog.Logger
}

// ConfirmPaymentHandler takes the raw body exactly as received; any
// re-encoding would break the signature.
//
// @Summary Payment provider callback
// @Tags payment-webhook-service
// @Param X-Webhook-Signature header string true "Hex HMAC-SHA256 of the raw body"
// @Success 200 "ok"
// @Failure 400 "Invalid signature or payload"
// @Failure 422 "Missing or unknown slot"
// @Router /webhooks/payment [post]
func (h Handler) ConfirmPaymentHandler(
	ctx context.Context,
	body []byte,
	signature string,
) (httptransport.ConfirmPaymentResponse, error) {
	result, err := h.Confirm.Execute(ctx, commands.ConfirmPaymentCommand{Body: body, Signature: signature})
	if err != nil {
		return httptransport.ConfirmPaymentResponse{}, err
	}
	return httptransport.ConfirmPaymentResponse{
		SlotID:     result.Event.SlotID,
		PaymentRef: result.Event.PaymentRef,
	}, nil
}
