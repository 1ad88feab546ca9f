package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	sloterrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
	slothttp "poemclub/contexts/sponsorship/slot-booking-service/transport/http"
)

func (s *Server) handleSponsorPage(w http.ResponseWriter, r *http.Request) {
	s.renderSponsorPage(w, r, http.StatusOK, "")
}

func (s *Server) renderSponsorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := pageData{Title: "Sponsor a day", Error: message}
	resp, err := s.slots.Handler.ListUpcomingSlotsHandler(r.Context())
	if err != nil {
		status, _, data.Error = s.slotErrorStatus(err)
	} else {
		data.Today = resp.Today
		data.Slots = resp.Items
	}
	s.renderPage(w, r, status, pageSponsor, data)
}

func (s *Server) handleListSlots(w http.ResponseWriter, r *http.Request) {
	resp, err := s.slots.Handler.ListUpcomingSlotsHandler(r.Context())
	if err != nil {
		s.writeSlotDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleReserveSlot accepts the sponsor page form and answers with a 303 to
// the provider checkout. JSON callers get the reservation back instead.
func (s *Server) handleReserveSlot(w http.ResponseWriter, r *http.Request) {
	asJSON := wantsJSON(r)
	var req slothttp.ReserveSlotRequest
	if asJSON {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON payload")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			s.renderSponsorPage(w, r, http.StatusBadRequest, "The form could not be read.")
			return
		}
		req.Date = r.PostFormValue("date")
	}

	resp, err := s.slots.Handler.ReserveSlotHandler(r.Context(), req)
	if err != nil {
		if asJSON {
			s.writeSlotDomainError(w, err)
			return
		}
		status, _, message := s.slotErrorStatus(err)
		s.renderSponsorPage(w, r, status, message)
		return
	}
	if asJSON {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	http.Redirect(w, r, resp.PaymentURL, http.StatusSeeOther)
}

func (s *Server) handleClaimPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	s.renderPage(w, r, http.StatusOK, pageClaim, pageData{
		Title: "Claim your day",
		Claim: slothttp.ClaimSlotRequest{
			SlotID:     query.Get("slot_id"),
			PaymentRef: query.Get("payment_ref"),
			ClaimToken: query.Get("claim_token"),
		},
	})
}

func (s *Server) handleClaimSlot(w http.ResponseWriter, r *http.Request) {
	asJSON := wantsJSON(r)
	var req slothttp.ClaimSlotRequest
	if asJSON {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON payload")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			s.renderPage(w, r, http.StatusBadRequest, pageClaim, pageData{
				Title: "Claim your day",
				Error: "The form could not be read.",
			})
			return
		}
		req = slothttp.ClaimSlotRequest{
			SlotID:      r.PostFormValue("slot_id"),
			PaymentRef:  r.PostFormValue("payment_ref"),
			ClaimToken:  r.PostFormValue("claim_token"),
			SponsorName: r.PostFormValue("sponsor_name"),
			Headline:    r.PostFormValue("headline"),
			Body:        r.PostFormValue("body"),
			URL:         r.PostFormValue("url"),
			ImageURL:    r.PostFormValue("image_url"),
		}
	}

	resp, err := s.slots.Handler.ClaimSlotHandler(r.Context(), req)
	if err != nil {
		if asJSON {
			s.writeSlotDomainError(w, err)
			return
		}
		status, _, message := s.slotErrorStatus(err)
		s.renderPage(w, r, status, pageClaim, pageData{
			Title: "Claim your day",
			Error: message,
			Claim: req,
		})
		return
	}
	if asJSON {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	s.renderPage(w, r, http.StatusOK, pageMessage, pageData{
		Title:   "You're live",
		Message: "Your sponsorship for " + resp.Date + " is approved.",
	})
}

func (s *Server) handleSponsorClick(w http.ResponseWriter, r *http.Request) {
	target := s.slots.Handler.ClickRedirect(r.Context(), r.URL.Query().Get("slot"))
	http.Redirect(w, r, target, http.StatusFound)
}

func (s *Server) writeSlotDomainError(w http.ResponseWriter, err error) {
	status, code, message := s.slotErrorStatus(err)
	writeError(w, status, code, message)
}

func (s *Server) slotErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, sloterrors.ErrSlotNotFound):
		return http.StatusNotFound, "slot_not_found", err.Error()
	case errors.Is(err, sloterrors.ErrSlotConflict):
		return http.StatusConflict, "slot_conflict", "that date was just taken, try another"
	case errors.Is(err, sloterrors.ErrSlotNotClaimable):
		return http.StatusConflict, "slot_not_claimable", "that slot is not paid for under this reference"
	case errors.Is(err, sloterrors.ErrInvalidDate),
		errors.Is(err, sloterrors.ErrInvalidSlotID),
		errors.Is(err, sloterrors.ErrInvalidSponsorContent):
		return http.StatusBadRequest, "invalid_request", err.Error()
	case errors.Is(err, sloterrors.ErrPaymentLinkUnavailable):
		s.logger.Error("payment link unavailable",
			"event", "payment_link_unavailable",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		return http.StatusBadGateway, "payment_link_unavailable", "checkout is unavailable, try again later"
	default:
		s.logger.Error("sponsor request failed",
			"event", "sponsor_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		return http.StatusInternalServerError, "internal_error", "internal server error"
	}
}
