package errors

import "errors"

var (
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrInvalidPayload       = errors.New("invalid webhook payload")
	ErrMissingSlotReference = errors.New("webhook carries no slot reference")
)
