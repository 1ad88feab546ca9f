package paymentlink

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
	"poemclub/contexts/sponsorship/slot-booking-service/domain/services"
)

// Builder appends amount, currency, reference and metadata to a hosted
// checkout link. The reference is the slot id so the webhook can find the
// slot again; metadata repeats it for providers that only echo metadata.
type Builder struct {
	Base string
	// ReturnURL is the public claim page; empty omits return_url.
	ReturnURL string
}

type metadata struct {
	SlotID string `json:"slot_id"`
	Date   string `json:"date"`
}

func (b Builder) BuildLink(slot entities.Slot, amountCents int64, currency string, claimToken string) (string, error) {
	base := strings.TrimSpace(b.Base)
	if base == "" {
		return "", fmt.Errorf("payment link base is not configured")
	}
	link, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse payment link base: %w", err)
	}
	if link.Scheme != "https" && link.Scheme != "http" {
		return "", fmt.Errorf("payment link base must be an http(s) url")
	}

	meta, err := json.Marshal(metadata{SlotID: slot.SlotID, Date: slot.Date})
	if err != nil {
		return "", err
	}

	query := link.Query()
	query.Set("amount", services.FormatAmount(amountCents))
	if currency != "" {
		query.Set("currency", currency)
	}
	query.Set("reference", slot.SlotID)
	query.Set("metadata", string(meta))
	returnURL, err := b.returnURL(slot.SlotID, claimToken)
	if err != nil {
		return "", err
	}
	if returnURL != "" {
		query.Set("return_url", returnURL)
	}
	link.RawQuery = query.Encode()
	return link.String(), nil
}

func (b Builder) returnURL(slotID string, claimToken string) (string, error) {
	raw := strings.TrimSpace(b.ReturnURL)
	if raw == "" {
		return "", nil
	}
	target, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse claim return url: %w", err)
	}
	query := target.Query()
	query.Set("slot_id", slotID)
	if claimToken != "" {
		query.Set("claim_token", claimToken)
	}
	target.RawQuery = query.Encode()
	return target.String(), nil
}
