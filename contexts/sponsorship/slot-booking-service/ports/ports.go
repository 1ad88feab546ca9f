package ports

import (
	"context"
	"time"

	"poemclub/contexts/sponsorship/slot-booking-service/domain/entities"
)

// SlotRepository owns sponsor_slots. Every state transition is a single
// conditional update at the store.
type SlotRepository interface {
	// SweepExpired releases reserved rows whose reserved_until is before now.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
	ListFrom(ctx context.Context, fromDate string) ([]entities.Slot, error)
	// ReserveAvailable moves the row for date from available to reserved.
	// ErrSlotConflict when no available row matched.
	ReserveAvailable(ctx context.Context, date string, until time.Time, now time.Time) (entities.Slot, error)
	// MarkBooked records payment. Approved rows are left as they are.
	MarkBooked(ctx context.Context, slotID string, paymentRef string, now time.Time) error
	// Claim attaches content to a paid, booked row whose payment_ref matches.
	// ErrSlotNotClaimable otherwise.
	Claim(ctx context.Context, slotID string, paymentRef string, content entities.SponsorContent, now time.Time) (entities.Slot, error)
	GetSlot(ctx context.Context, slotID string) (entities.Slot, error)
	GetApprovedForDate(ctx context.Context, date string) (entities.Slot, error)
	IncrementClicks(ctx context.Context, slotID string) error
	IncrementImpressions(ctx context.Context, slotID string) error
	// SeedSlots inserts rows for dates that have none and returns how many
	// were inserted.
	SeedSlots(ctx context.Context, slots []entities.Slot) (int64, error)
}

// PaymentLinkBuilder produces the provider checkout URL for a reservation.
// claimToken rides along on the return URL so the sponsor lands on the claim
// form with it filled in.
type PaymentLinkBuilder interface {
	BuildLink(slot entities.Slot, amountCents int64, currency string, claimToken string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
