package reservation

import (
	"context"
	"time"

	domainReservation "classbook/internal/domain/reservation"
	domainUser "classbook/internal/domain/user"
	"classbook/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service implements the booking use cases.
type Service struct {
	reservationRepo domainReservation.Repository
	userRepo        domainUser.Repository
	now             func() time.Time
}

func NewService(
	reservationRepo domainReservation.Repository,
	userRepo domainUser.Repository,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// Create books a slot for a student. The repository runs the duplicate and
// capacity checks under a slot lock, so concurrent bookings of the last
// seat cannot both succeed.
func (s *Service) Create(ctx context.Context, slotID, studentID uuid.UUID) (*ReservationResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	created, err := s.reservationRepo.Create(ctx, slotID, studentID)
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation created",
		zap.String("reservation_id", created.ID.String()),
		zap.String("time_slot_id", slotID.String()),
		zap.String("student_id", studentID.String()),
		zap.String("event", "reservation_created"),
	)

	return ToReservationResponse(created), nil
}

// Cancel flips a confirmed reservation to cancelled. Only the owning
// student may cancel, and only once.
func (s *Service) Cancel(ctx context.Context, reservationID, requesterID uuid.UUID) (*ReservationResponse, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if res.StudentID != requesterID {
		logger.Warn("Cancel attempt on another student's reservation",
			zap.String("reservation_id", reservationID.String()),
			zap.String("requester_id", requesterID.String()),
			zap.String("event", "reservation_cancel_forbidden"),
		)
		return nil, domainReservation.ErrNotOwner
	}

	if res.Status == domainReservation.StatusCancelled {
		return nil, domainReservation.ErrAlreadyCancelled
	}
	if res.Status != domainReservation.StatusConfirmed {
		return nil, domainReservation.ErrNotConfirmed
	}

	// The guarded transition closes the window between the checks above and
	// the write: a concurrent cancel that lost the race gets
	// ErrAlreadyCancelled instead of a second success.
	updated, err := s.reservationRepo.UpdateStatus(ctx, reservationID,
		domainReservation.StatusConfirmed, domainReservation.StatusCancelled)
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID.String()),
		zap.String("student_id", requesterID.String()),
		zap.String("event", "reservation_cancelled"),
	)

	return ToReservationResponse(updated), nil
}

// MySchedule partitions the student's reservations into upcoming and past
// by slot start time. Every entry lands in exactly one bucket.
func (s *Service) MySchedule(ctx context.Context, studentID uuid.UUID) (*ScheduleResponse, error) {
	entries, err := s.reservationRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	response := &ScheduleResponse{
		UpcomingSchedules: []ScheduleItem{},
		PastSchedules:     []ScheduleItem{},
	}

	now := s.now()
	for _, entry := range entries {
		item := toScheduleItem(entry)
		if entry.StartAt.After(now) {
			response.UpcomingSchedules = append(response.UpcomingSchedules, item)
		} else {
			response.PastSchedules = append(response.PastSchedules, item)
		}
	}

	return response, nil
}
