package services

import (
	"fmt"
	"strings"
	"time"

	domainerrors "poemclub/contexts/sponsorship/slot-booking-service/domain/errors"
)

const DateLayout = "2006-01-02"

// Pricing computes slot prices in minor currency units. Weekdays are taken in
// Location so the weekend boundary does not depend on the host timezone.
type Pricing struct {
	BaseCents             int64
	WeekendSurchargeCents int64
	Currency              string
	Location              *time.Location
}

func (p Pricing) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// ParseDate validates a "YYYY-MM-DD" date in the business timezone.
func (p Pricing) ParseDate(raw string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), p.location())
	if err != nil {
		return time.Time{}, domainerrors.ErrInvalidDate
	}
	return day, nil
}

// Today is the business-timezone calendar date of now.
func (p Pricing) Today(now time.Time) string {
	return now.In(p.location()).Format(DateLayout)
}

// AddDays returns the date n calendar days after date.
func (p Pricing) AddDays(date string, n int) (string, error) {
	day, err := p.ParseDate(date)
	if err != nil {
		return "", err
	}
	return day.AddDate(0, 0, n).Format(DateLayout), nil
}

func (p Pricing) IsWeekend(date string) (bool, error) {
	day, err := p.ParseDate(date)
	if err != nil {
		return false, err
	}
	weekday := day.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday, nil
}

func (p Pricing) PriceFor(date string) (int64, error) {
	weekend, err := p.IsWeekend(date)
	if err != nil {
		return 0, err
	}
	if weekend {
		return p.BaseCents + p.WeekendSurchargeCents, nil
	}
	return p.BaseCents, nil
}

// FormatAmount renders minor units as a decimal string, e.g. 15000 -> "150.00".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
