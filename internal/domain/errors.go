package domain

import "errors"

var (
	// ErrInvalidDate is returned when a period or entry date cannot be parsed
	// into a valid calendar date
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidAmount is returned when a payment amount cannot be coerced
	// into a number
	ErrInvalidAmount = errors.New("invalid amount")
)
