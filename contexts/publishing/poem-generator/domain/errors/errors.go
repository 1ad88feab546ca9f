package errors

import "errors"

var (
	ErrInvalidTitle   = errors.New("title is required")
	ErrUpstreamFailed = errors.New("poem generation failed")
)
