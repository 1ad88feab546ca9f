package httpserver

import (
	"errors"
	"io"
	"net/http"

	webhookerrors "poemclub/contexts/sponsorship/payment-webhook-service/domain/errors"
	webhookhttp "poemclub/contexts/sponsorship/payment-webhook-service/transport/http"
	sloterrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

// handlePaymentWebhook passes the raw body through untouched; the signature
// covers the exact bytes the provider sent.
func (s *Server) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, webhookhttp.MaxBodyBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "request body could not be read")
		return
	}
	if len(body) > webhookhttp.MaxBodyBytes {
		writeError(w, http.StatusRequestEntityTooLarge, "payload_too_large", "webhook payload is too large")
		return
	}

	_, err = s.webhooks.Handler.ConfirmPaymentHandler(r.Context(), body, r.Header.Get(webhookhttp.SignatureHeader))
	if err != nil {
		s.writeWebhookDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) writeWebhookDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, webhookerrors.ErrInvalidSignature):
		writeError(w, http.StatusBadRequest, "invalid_signature", err.Error())
	case errors.Is(err, webhookerrors.ErrInvalidPayload):
		writeError(w, http.StatusBadRequest, "invalid_payload", err.Error())
	case errors.Is(err, webhookerrors.ErrMissingSlotReference),
		errors.Is(err, sloterrors.ErrInvalidSlotID):
		writeError(w, http.StatusUnprocessableEntity, "missing_slot", "webhook carries no slot reference")
	case errors.Is(err, sloterrors.ErrSlotNotFound):
		writeError(w, http.StatusUnprocessableEntity, "unknown_slot", err.Error())
	default:
		s.logger.Error("payment webhook failed",
			"event", "payment_webhook_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
