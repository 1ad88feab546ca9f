package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	domainerrors "poemclub/contexts/sponsorship/payment-webhook-service/domain/errors"
)

// PaymentEvent is the part of a provider callback the booking flow needs.
type PaymentEvent struct {
	SlotID     string
	PaymentRef string
}

type eventData struct {
	ID        any `json:"id"`
	Reference any `json:"reference"`
	Metadata  any `json:"metadata"`
}

type eventPayload struct {
	ID        any        `json:"id"`
	Reference any        `json:"reference"`
	Metadata  any        `json:"metadata"`
	Data      *eventData `json:"data"`
}

// ParsePaymentEvent reads the slot id and payment reference from a provider
// payload. Providers disagree on shape, so lookups fall back in order:
//
//	metadata: data.metadata, then metadata
//	slot:     metadata.slot_id, metadata.reference, data.reference, reference
//	payment:  data.id, then id
//
// PaymentRef is left empty when the provider sent none.
func ParsePaymentEvent(raw []byte) (PaymentEvent, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var payload eventPayload
	if err := decoder.Decode(&payload); err != nil {
		return PaymentEvent{}, domainerrors.ErrInvalidPayload
	}

	var data eventData
	if payload.Data != nil {
		data = *payload.Data
	}
	meta := asObject(data.Metadata)
	if data.Metadata == nil {
		meta = asObject(payload.Metadata)
	}

	slotID := firstNonEmpty(
		asString(meta["slot_id"]),
		asString(meta["reference"]),
		asString(data.Reference),
		asString(payload.Reference),
	)
	if slotID == "" {
		return PaymentEvent{}, domainerrors.ErrMissingSlotReference
	}
	return PaymentEvent{
		SlotID:     slotID,
		PaymentRef: firstNonEmpty(asString(data.ID), asString(payload.ID)),
	}, nil
}

// asObject accepts metadata as an object or as a JSON-encoded string.
func asObject(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case string:
		decoder := json.NewDecoder(strings.NewReader(v))
		decoder.UseNumber()
		var out map[string]any
		if err := decoder.Decode(&out); err == nil {
			return out
		}
	}
	return nil
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case bool, map[string]any, []any:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
