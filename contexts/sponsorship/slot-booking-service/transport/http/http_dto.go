package httptransport

import "time"

type SlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Paid        bool   `json:"paid"`
	SponsorName string `json:"sponsor_name,omitempty"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Weekend     bool   `json:"weekend"`
}

type ListSlotsResponse struct {
	Today string         `json:"today"`
	Items []SlotResponse `json:"items"`
}

type ReserveSlotRequest struct {
	Date string `json:"date"`
}

type ReserveSlotResponse struct {
	SlotID        string    `json:"slot_id"`
	Date          string    `json:"date"`
	AmountCents   int64     `json:"amount_cents"`
	Currency      string    `json:"currency"`
	PaymentURL    string    `json:"payment_url"`
	ReservedUntil time.Time `json:"reserved_until"`
	ClaimToken    string    `json:"claim_token,omitempty"`
}

type ClaimSlotRequest struct {
	SlotID      string `json:"slot_id"`
	PaymentRef  string `json:"payment_ref"`
	ClaimToken  string `json:"claim_token"`
	SponsorName string `json:"sponsor_name"`
	Headline    string `json:"headline"`
	Body        string `json:"body"`
	URL         string `json:"url"`
	ImageURL    string `json:"image_url"`
}

type ClaimSlotResponse struct {
	SlotID string `json:"slot_id"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

// SponsorView is today's sponsor as rendered on pages.
type SponsorView struct {
	SlotID      string
	SponsorName string
	Headline    string
	Body        string
	ImageURL    string
	ClickPath   string
}
