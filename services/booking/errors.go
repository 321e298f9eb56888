package booking

import "errors"

// Booking failures the HTTP layer maps to status codes. Anything else
// coming out of this package is an upstream store failure.
var (
	ErrDuplicateID   = errors.New("appointment with the given id already exists")
	ErrInvalidType   = errors.New("invalid appointment type")
	ErrNotFound      = errors.New("appointment not found")
	ErrPhoneMismatch = errors.New("phone number does not match")
	ErrSlotTaken     = errors.New("requested time is no longer available")
	ErrDateBusy      = errors.New("another booking for this date is in progress")
)
