package errors

import "errors"

var (
	ErrPoemNotFound      = errors.New("poem not found")
	ErrInvalidPoem       = errors.New("invalid poem")
	ErrInvalidPoemID     = errors.New("poem id is required")
	ErrSubdomainTaken    = errors.New("subdomain already taken")
	ErrSubdomainReserved = errors.New("subdomain is reserved")
)
