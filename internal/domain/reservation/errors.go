package reservation

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyReserved     = errors.New("slot is already reserved by this student")
	ErrCapacityExceeded    = errors.New("slot capacity is exhausted")
	ErrAlreadyCancelled    = errors.New("reservation is already cancelled")
	ErrNotConfirmed        = errors.New("reservation is not in confirmed state")
	ErrNotOwner            = errors.New("reservation belongs to another student")
)
