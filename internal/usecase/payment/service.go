package payment

import (
	"context"
	"fmt"
	"time"

	domainPayment "classbook/internal/domain/payment"
	domainUser "classbook/internal/domain/user"
	"classbook/internal/logger"
	"classbook/internal/usecase/reservation"
	appErrors "classbook/pkg/errors"
	"classbook/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service records provider-approved payments together with the reservation
// they pay for.
type Service struct {
	paymentRepo domainPayment.Repository
	userRepo    domainUser.Repository
}

func NewService(paymentRepo domainPayment.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
	}
}

// Complete books the slot and stores the payment confirmation atomically:
// if the booking fails for any reason, no payment row is written.
func (s *Service) Complete(ctx context.Context, studentID uuid.UUID, req *CompleteRequest) (*PaymentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if _, err := s.userRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	p, err := parsePayload(&req.Payment)
	if err != nil {
		return nil, err
	}

	created, res, err := s.paymentRepo.CreateWithReservation(ctx, req.TimeSlotID, studentID, p)
	if err != nil {
		return nil, err
	}

	logger.Info("Payment recorded",
		zap.String("payment_id", created.ID.String()),
		zap.String("reservation_id", created.ReservationID.String()),
		zap.String("order_id", created.OrderID),
		zap.Int("total_amount", created.TotalAmount),
		zap.String("event", "payment_recorded"),
	)

	return toPaymentResponse(created, reservation.ToReservationResponse(res)), nil
}

func parsePayload(payload *ProviderPayload) (*domainPayment.Payment, error) {
	requestedAt, err := time.Parse(time.RFC3339, payload.RequestedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad requested_at: %v", domainPayment.ErrInvalidPayload, err)
	}

	approvedAt, err := time.Parse(time.RFC3339, payload.ApprovedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad approved_at: %v", domainPayment.ErrInvalidPayload, err)
	}

	return &domainPayment.Payment{
		OrderID:     payload.OrderID,
		PaymentKey:  payload.PaymentKey,
		Method:      payload.Method,
		Status:      payload.Status,
		RequestedAt: requestedAt,
		ApprovedAt:  approvedAt,
		TotalAmount: payload.TotalAmount,
	}, nil
}
