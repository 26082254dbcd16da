package payment

import (
	"time"

	domainPayment "classbook/internal/domain/payment"
	"classbook/internal/usecase/reservation"

	"github.com/google/uuid"
)

type CompleteRequest struct {
	TimeSlotID uuid.UUID       `json:"time_slot_id" validate:"required"`
	Payment    ProviderPayload `json:"payment" validate:"required"`
}

// ProviderPayload is the confirmation the payment provider sends back after
// approving a payment. Timestamps are ISO-8601 with offset.
type ProviderPayload struct {
	OrderID     string `json:"order_id" validate:"required"`
	PaymentKey  string `json:"payment_key" validate:"required"`
	Method      string `json:"method"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at" validate:"required"`
	ApprovedAt  string `json:"approved_at" validate:"required"`
	TotalAmount int    `json:"total_amount" validate:"required,gt=0"`
}

type PaymentResponse struct {
	ID            uuid.UUID                        `json:"id"`
	ReservationID uuid.UUID                        `json:"reservation_id"`
	OrderID       string                           `json:"order_id"`
	PaymentKey    string                           `json:"payment_key"`
	Method        string                           `json:"method"`
	Status        string                           `json:"status"`
	RequestedAt   time.Time                        `json:"requested_at"`
	ApprovedAt    time.Time                        `json:"approved_at"`
	TotalAmount   int                              `json:"total_amount"`
	Reservation   *reservation.ReservationResponse `json:"reservation"`
}

func toPaymentResponse(p *domainPayment.Payment, r *reservation.ReservationResponse) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		OrderID:       p.OrderID,
		PaymentKey:    p.PaymentKey,
		Method:        p.Method,
		Status:        p.Status,
		RequestedAt:   p.RequestedAt,
		ApprovedAt:    p.ApprovedAt,
		TotalAmount:   p.TotalAmount,
		Reservation:   r,
	}
}
