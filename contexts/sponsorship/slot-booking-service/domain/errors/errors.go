package errors

import "errors"

var (
	ErrSlotNotFound           = errors.New("sponsor slot not found")
	ErrSlotConflict           = errors.New("sponsor slot is no longer available")
	ErrSlotNotClaimable       = errors.New("sponsor slot is not paid and booked")
	ErrInvalidDate            = errors.New("invalid slot date")
	ErrInvalidSlotID          = errors.New("slot id is required")
	ErrInvalidSponsorContent  = errors.New("invalid sponsor content")
	ErrPaymentLinkUnavailable = errors.New("payment link unavailable")
)
