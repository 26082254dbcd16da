package reservation

import (
	"time"

	domainReservation "classbook/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateRequest struct {
	TimeSlotID uuid.UUID `json:"time_slot_id" validate:"required"`
}

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	TimeSlotID uuid.UUID `json:"time_slot_id"`
	StudentID  uuid.UUID `json:"student_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type ScheduleItem struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Status        string    `json:"status"`
	TimeSlotID    uuid.UUID `json:"time_slot_id"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	ClassID       uuid.UUID `json:"class_id"`
	ClassName     string    `json:"class_name"`
	Location      string    `json:"location"`
	Price         int       `json:"price"`
	TeacherName   string    `json:"teacher_name"`
}

type ScheduleResponse struct {
	UpcomingSchedules []ScheduleItem `json:"upcoming_schedules"`
	PastSchedules     []ScheduleItem `json:"past_schedules"`
}

func ToReservationResponse(r *domainReservation.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}
	return &ReservationResponse{
		ID:         r.ID,
		TimeSlotID: r.TimeSlotID,
		StudentID:  r.StudentID,
		Status:     r.Status.String(),
		CreatedAt:  r.CreatedAt,
	}
}

func toScheduleItem(e domainReservation.ScheduleEntry) ScheduleItem {
	return ScheduleItem{
		ReservationID: e.ReservationID,
		Status:        e.Status.String(),
		TimeSlotID:    e.TimeSlotID,
		StartAt:       e.StartAt,
		EndAt:         e.EndAt,
		ClassID:       e.ClassID,
		ClassName:     e.ClassName,
		Location:      e.Location,
		Price:         e.Price,
		TeacherName:   e.TeacherName,
	}
}
