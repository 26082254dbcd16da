package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Status uses the persisted status codes: 1 confirmed, 2 cancelled.
type Status int

const (
	StatusConfirmed Status = 1
	StatusCancelled Status = 2
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "CONFIRMED"
	case StatusCancelled:
		return "CANCELLED"
	}
	return "UNKNOWN"
}

type Reservation struct {
	ID         uuid.UUID
	TimeSlotID uuid.UUID
	StudentID  uuid.UUID
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ScheduleEntry is one row of a student's schedule, joined with the slot,
// class and teacher it belongs to.
type ScheduleEntry struct {
	ReservationID uuid.UUID
	Status        Status
	TimeSlotID    uuid.UUID
	StartAt       time.Time
	EndAt         time.Time
	ClassID       uuid.UUID
	ClassName     string
	Location      string
	Price         int
	TeacherName   string
}

// TeacherScheduleEntry is one of a teacher's slots with its confirmed
// reservation count. Slots nobody booked appear with ConfirmedCount 0.
type TeacherScheduleEntry struct {
	TimeSlotID     uuid.UUID
	StartAt        time.Time
	EndAt          time.Time
	ClassID        uuid.UUID
	ClassName      string
	MaxCapacity    int
	ConfirmedCount int64
}

type EnrolledStudent struct {
	ReservationID uuid.UUID
	StudentID     uuid.UUID
	Name          string
	Email         string
}
