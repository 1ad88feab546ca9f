package entities

import (
	"net/url"
	"strings"
	"time"

	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusBooked    Status = "booked"
	StatusApproved  Status = "approved"
)

const (
	MaxSponsorNameLength = 80
	MaxHeadlineLength    = 120
	MaxBodyLength        = 500
)

// Slot is one sponsorable day. Date is "YYYY-MM-DD" in the business timezone.
type Slot struct {
	SlotID        string
	Date          string
	Status        Status
	ReservedUntil *time.Time
	Paid          bool
	PaymentRef    string
	SponsorName   string
	Headline      string
	Body          string
	URL           string
	ImageURL      string
	Impressions   int64
	Clicks        int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Claimable reports whether sponsor content may be attached.
func (s Slot) Claimable() bool {
	return s.Paid && s.Status == StatusBooked
}

// ReservationExpired reports whether a sweep at now would release the slot.
func (s Slot) ReservationExpired(now time.Time) bool {
	return s.Status == StatusReserved && s.ReservedUntil != nil && s.ReservedUntil.Before(now)
}

// SponsorContent is what a paid sponsor publishes on their day.
type SponsorContent struct {
	SponsorName string
	Headline    string
	Body        string
	URL         string
	ImageURL    string
}

func NewSponsorContent(name string, headline string, body string, link string, imageURL string) (SponsorContent, error) {
	content := SponsorContent{
		SponsorName: strings.TrimSpace(name),
		Headline:    strings.TrimSpace(headline),
		Body:        strings.TrimSpace(body),
		URL:         strings.TrimSpace(link),
		ImageURL:    strings.TrimSpace(imageURL),
	}
	if content.SponsorName == "" || content.Headline == "" {
		return SponsorContent{}, domainerrors.ErrInvalidSponsorContent
	}
	if len(content.SponsorName) > MaxSponsorNameLength ||
		len(content.Headline) > MaxHeadlineLength ||
		len(content.Body) > MaxBodyLength {
		return SponsorContent{}, domainerrors.ErrInvalidSponsorContent
	}
	if !isWebURL(content.URL) {
		return SponsorContent{}, domainerrors.ErrInvalidSponsorContent
	}
	if content.ImageURL != "" && !isWebURL(content.ImageURL) {
		return SponsorContent{}, domainerrors.ErrInvalidSponsorContent
	}
	return content, nil
}

func isWebURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
