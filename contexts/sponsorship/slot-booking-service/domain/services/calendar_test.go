package services

import (
	"errors"
	"testing"
	"time"

	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

func testPricing() Pricing {
	return Pricing{
		BaseCents:             15000,
		WeekendSurchargeCents: 10000,
		Currency:              "ZAR",
		Location:              time.FixedZone("SAST", 2*60*60),
	}
}

func TestPriceForWeekendAndWeekday(t *testing.T) {
	p := testPricing()
	cases := map[string]int64{
		"2026-06-06": 25000, // Saturday
		"2026-06-07": 25000, // Sunday
		"2026-06-09": 15000, // Tuesday
	}
	for date, want := range cases {
		got, err := p.PriceFor(date)
		if err != nil {
			t.Fatalf("PriceFor(%s) failed: %v", date, err)
		}
		if got != want {
			t.Fatalf("PriceFor(%s) = %d, want %d", date, got, want)
		}
	}
	if _, err := p.PriceFor("06/06/2026"); !errors.Is(err, domainerrors.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestTodayUsesBusinessTimezone(t *testing.T) {
	p := testPricing()
	// 23:30 UTC is already the next day two hours east.
	now := time.Date(2026, time.June, 5, 23, 30, 0, 0, time.UTC)
	if got := p.Today(now); got != "2026-06-06" {
		t.Fatalf("expected business date 2026-06-06, got %s", got)
	}
	if got := (Pricing{}).Today(now); got != "2026-06-05" {
		t.Fatalf("expected UTC default 2026-06-05, got %s", got)
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	got, err := testPricing().AddDays("2026-06-29", 3)
	if err != nil || got != "2026-07-02" {
		t.Fatalf("AddDays = %q, %v", got, err)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{0: "0.00", 5: "0.05", 15000: "150.00", 12345: "123.45", -250: "-2.50"}
	for cents, want := range cases {
		if got := FormatAmount(cents); got != want {
			t.Fatalf("FormatAmount(%d) = %q, want %q", cents, got, want)
		}
	}
}
