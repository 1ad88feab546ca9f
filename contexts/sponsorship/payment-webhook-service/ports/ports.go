package ports

import "context"

// SlotBooker marks a slot paid and booked. Returns an error for unknown slots.
type SlotBooker interface {
	MarkBooked(ctx context.Context, slotID string, paymentRef string) error
}

// IDGenerator supplies a payment reference when the provider sent none.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// SlotBookerFunc adapts a function to SlotBooker.
type SlotBookerFunc func(ctx context.Context, slotID string, paymentRef string) error

func (f SlotBookerFunc) MarkBooked(ctx context.Context, slotID string, paymentRef string) error {
	return f(ctx, slotID, paymentRef)
}
