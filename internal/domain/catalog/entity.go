package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID
	Name string
}

// ClassOffering is a bookable course. Immutable after creation; rows are
// seeded by operators, there is no creation endpoint.
type ClassOffering struct {
	ID          uuid.UUID
	TeacherID   uuid.UUID
	CategoryID  uuid.UUID
	Name        string
	Detail      string
	Curriculum  string
	Included    string
	Required    string
	Longitude   string
	Latitude    string
	Location    string
	MaxCapacity int
	Price       int
	CreatedAt   time.Time

	// Filled by joined queries.
	CategoryName string
	TeacherName  string
}

// TimeSlot is one concrete occurrence of a class offering.
type TimeSlot struct {
	ID      uuid.UUID
	ClassID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}
