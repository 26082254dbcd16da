package reservation

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists reservations and answers the schedule queries.
//
// Create runs the whole capacity-checked booking inside one database
// transaction: the slot row is locked, the duplicate and capacity checks run
// against the locked state, then the confirmed row is inserted. Concurrent
// bookings of the last seat serialize on the lock, so exactly one succeeds.
//
// UpdateStatus is a guarded transition: the row is updated only while it
// still holds the from status. Of two concurrent cancels exactly one flips
// the row; the loser gets the error matching the state it observed.
type Repository interface {
	Create(ctx context.Context, slotID, studentID uuid.UUID) (*Reservation, error)
	GetByID(ctx context.Context, reservationID uuid.UUID) (*Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, from, to Status) (*Reservation, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]ScheduleEntry, error)

	ScheduleForTeacher(ctx context.Context, teacherID uuid.UUID) ([]TeacherScheduleEntry, error)
	EnrolledStudents(ctx context.Context, teacherID, slotID uuid.UUID) ([]EnrolledStudent, error)
}
