package teacher

import (
	"context"
	"time"

	domainReservation "classbook/internal/domain/reservation"

	"github.com/google/uuid"
)

// Service implements the teacher-facing schedule views.
type Service struct {
	reservationRepo domainReservation.Repository
	now             func() time.Time
}

func NewService(reservationRepo domainReservation.Repository) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		now:             time.Now,
	}
}

// Schedule returns the teacher's slots with confirmed counts, split into
// upcoming and past by start time. Slots nobody booked are included.
func (s *Service) Schedule(ctx context.Context, teacherID uuid.UUID) (*ScheduleResponse, error) {
	entries, err := s.reservationRepo.ScheduleForTeacher(ctx, teacherID)
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

// EnrolledStudents lists the confirmed students of one slot. The repository
// scopes the lookup by slot ownership, so a teacher cannot read another
// teacher's roster.
func (s *Service) EnrolledStudents(ctx context.Context, teacherID, slotID uuid.UUID) ([]EnrolledStudentResponse, error) {
	students, err := s.reservationRepo.EnrolledStudents(ctx, teacherID, slotID)
	if err != nil {
		return nil, err
	}

	responses := make([]EnrolledStudentResponse, len(students))
	for i, student := range students {
		responses[i] = toEnrolledStudentResponse(student)
	}

	return responses, nil
}
