package catalog

import (
	"time"

	domainCatalog "classbook/internal/domain/catalog"

	"github.com/google/uuid"
)

type ClassResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Detail      string    `json:"detail"`
	Curriculum  string    `json:"curriculum"`
	Included    string    `json:"included"`
	Required    string    `json:"required"`
	Category    string    `json:"category"`
	TeacherName string    `json:"teacher_name"`
	Longitude   string    `json:"longitude"`
	Latitude    string    `json:"latitude"`
	Location    string    `json:"location"`
	MaxCapacity int       `json:"max_capacity"`
	Price       int       `json:"price"`
}

type TimeSlotResponse struct {
	ID      uuid.UUID `json:"id"`
	ClassID uuid.UUID `json:"class_id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

func ToClassResponse(c *domainCatalog.ClassOffering) *ClassResponse {
	if c == nil {
		return nil
	}
	return &ClassResponse{
		ID:          c.ID,
		Name:        c.Name,
		Detail:      c.Detail,
		Curriculum:  c.Curriculum,
		Included:    c.Included,
		Required:    c.Required,
		Category:    c.CategoryName,
		TeacherName: c.TeacherName,
		Longitude:   c.Longitude,
		Latitude:    c.Latitude,
		Location:    c.Location,
		MaxCapacity: c.MaxCapacity,
		Price:       c.Price,
	}
}

func ToTimeSlotResponse(s *domainCatalog.TimeSlot) *TimeSlotResponse {
	return &TimeSlotResponse{
		ID:      s.ID,
		ClassID: s.ClassID,
		StartAt: s.StartAt,
		EndAt:   s.EndAt,
	}
}
