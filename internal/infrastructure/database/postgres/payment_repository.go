package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classbook/internal/database"
	"classbook/internal/domain/payment"
	"classbook/internal/domain/reservation"
	"classbook/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepository implements payment.Repository on gorm.
type PaymentRepository struct {
	db *database.Database
}

func NewPaymentRepository(db *database.Database) payment.Repository {
	return &PaymentRepository{db: db}
}

// CreateWithReservation books the slot and records the payment in one
// transaction. A failed booking rolls back the whole thing, so a payment
// row can never exist without its reservation.
func (r *PaymentRepository) CreateWithReservation(ctx context.Context, slotID, studentID uuid.UUID, p *payment.Payment) (*payment.Payment, *reservation.Reservation, error) {
	var (
		createdReservation *models.ReservationModel
		createdPayment     *models.PaymentModel
	)

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		createdReservation, err = bookSlot(tx, slotID, studentID)
		if err != nil {
			return err
		}

		createdPayment = &models.PaymentModel{
			ID:            uuid.New(),
			ReservationID: createdReservation.ID,
			OrderID:       p.OrderID,
			PaymentKey:    p.PaymentKey,
			Method:        p.Method,
			Status:        p.Status,
			RequestedAt:   p.RequestedAt,
			ApprovedAt:    p.ApprovedAt,
			TotalAmount:   p.TotalAmount,
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(createdPayment).Error; err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return toPaymentEntity(createdPayment), toReservationEntity(createdReservation), nil
}

func (r *PaymentRepository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	var dbModel models.PaymentModel
	err := r.db.DB.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, payment.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return toPaymentEntity(&dbModel), nil
}

func toPaymentEntity(m *models.PaymentModel) *payment.Payment {
	return &payment.Payment{
		ID:            m.ID,
		ReservationID: m.ReservationID,
		OrderID:       m.OrderID,
		PaymentKey:    m.PaymentKey,
		Method:        m.Method,
		Status:        m.Status,
		RequestedAt:   m.RequestedAt,
		ApprovedAt:    m.ApprovedAt,
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt,
	}
}
