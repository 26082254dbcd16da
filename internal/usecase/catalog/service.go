package catalog

import (
	"context"

	domainCatalog "classbook/internal/domain/catalog"

	"github.com/google/uuid"
)

// Service exposes the read-only class catalog.
type Service struct {
	catalogRepo domainCatalog.Repository
}

func NewService(catalogRepo domainCatalog.Repository) *Service {
	return &Service{catalogRepo: catalogRepo}
}

func (s *Service) ListClasses(ctx context.Context) ([]*ClassResponse, error) {
	classes, err := s.catalogRepo.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ClassResponse, len(classes))
	for i, c := range classes {
		responses[i] = ToClassResponse(c)
	}

	return responses, nil
}

func (s *Service) GetClass(ctx context.Context, classID uuid.UUID) (*ClassResponse, error) {
	c, err := s.catalogRepo.GetClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	return ToClassResponse(c), nil
}

func (s *Service) ListSlots(ctx context.Context, classID uuid.UUID) ([]*TimeSlotResponse, error) {
	slots, err := s.catalogRepo.ListSlots(ctx, classID)
	if err != nil {
		return nil, err
	}

	responses := make([]*TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = ToTimeSlotResponse(slot)
	}

	return responses, nil
}
