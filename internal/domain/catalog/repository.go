package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the read-only catalog access.
type Repository interface {
	ListClasses(ctx context.Context) ([]*ClassOffering, error)
	GetClass(ctx context.Context, classID uuid.UUID) (*ClassOffering, error)
	ListSlots(ctx context.Context, classID uuid.UUID) ([]*TimeSlot, error)
}
