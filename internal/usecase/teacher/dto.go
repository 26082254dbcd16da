package teacher

import (
	"time"

	domainReservation "classbook/internal/domain/reservation"

	"github.com/google/uuid"
)

type ScheduleItem struct {
	TimeSlotID     uuid.UUID `json:"time_slot_id"`
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	ClassID        uuid.UUID `json:"class_id"`
	ClassName      string    `json:"class_name"`
	MaxCapacity    int       `json:"max_capacity"`
	ConfirmedCount int64     `json:"confirmed_count"`
}

type ScheduleResponse struct {
	UpcomingSchedules []ScheduleItem `json:"upcoming_schedules"`
	PastSchedules     []ScheduleItem `json:"past_schedules"`
}

type EnrolledStudentResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	StudentID     uuid.UUID `json:"student_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
}

func toScheduleItem(e domainReservation.TeacherScheduleEntry) ScheduleItem {
	return ScheduleItem{
		TimeSlotID:     e.TimeSlotID,
		StartAt:        e.StartAt,
		EndAt:          e.EndAt,
		ClassID:        e.ClassID,
		ClassName:      e.ClassName,
		MaxCapacity:    e.MaxCapacity,
		ConfirmedCount: e.ConfirmedCount,
	}
}

func toEnrolledStudentResponse(s domainReservation.EnrolledStudent) EnrolledStudentResponse {
	return EnrolledStudentResponse{
		ReservationID: s.ReservationID,
		StudentID:     s.StudentID,
		Name:          s.Name,
		Email:         s.Email,
	}
}
