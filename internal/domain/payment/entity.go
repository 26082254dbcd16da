package payment

import (
	"time"

	"github.com/google/uuid"
)

// Payment stores a third-party payment confirmation, 1:1 with the
// reservation it paid for.
type Payment struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	OrderID       string
	PaymentKey    string
	Method        string
	Status        string
	RequestedAt   time.Time
	ApprovedAt    time.Time
	TotalAmount   int
	CreatedAt     time.Time
}
