package domain

import "errors"

// Domain errors.
var (
	ErrInputClosed   = errors.New("input closed before the order was complete")
	ErrLineTooLong   = errors.New("input line too long")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidConfig = errors.New("invalid configuration")
)
