package payment

import (
	"context"

	"classbook/internal/domain/reservation"

	"github.com/google/uuid"
)

// Repository records payments. CreateWithReservation books the slot and
// inserts the payment row in a single transaction; if booking fails no
// payment row is written.
type Repository interface {
	CreateWithReservation(ctx context.Context, slotID, studentID uuid.UUID, p *Payment) (*Payment, *reservation.Reservation, error)
	GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*Payment, error)
}
