package entities

import (
	"errors"
	"testing"
	"time"

	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

func TestNewSponsorContentValidation(t *testing.T) {
	if _, err := NewSponsorContent(" Ink Co ", "Headline", "", "https://ink.example/x?y=1", ""); err != nil {
		t.Fatalf("expected valid content, got %v", err)
	}
	invalid := []struct{ name, headline, link, image string }{
		{"", "Headline", "https://ink.example", ""},
		{"Ink", "", "https://ink.example", ""},
		{"Ink", "Headline", "javascript:alert(1)", ""},
		{"Ink", "Headline", "ink.example", ""},
		{"Ink", "Headline", "https://ink.example", "data:image/png;base64,xx"},
	}
	for _, tc := range invalid {
		if _, err := NewSponsorContent(tc.name, tc.headline, "", tc.link, tc.image); !errors.Is(err, domainerrors.ErrInvalidSponsorContent) {
			t.Fatalf("expected invalid content for %+v, got %v", tc, err)
		}
	}
}

func TestSlotPredicates(t *testing.T) {
	now := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Second)
	if !(Slot{Status: StatusReserved, ReservedUntil: &past}).ReservationExpired(now) {
		t.Fatal("expected lapsed reservation to be expired")
	}
	if (Slot{Status: StatusBooked, ReservedUntil: &past}).ReservationExpired(now) {
		t.Fatal("booked slots never expire")
	}
	if (Slot{Status: StatusReserved}).Claimable() || !(Slot{Status: StatusBooked, Paid: true}).Claimable() {
		t.Fatal("claimable must require paid and booked")
	}
}
