package catalog

import (
	"context"
	"testing"
	"time"

	domainCatalog "classbook/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListClasses(ctx context.Context) ([]*domainCatalog.ClassOffering, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainCatalog.ClassOffering), args.Error(1)
}

func (m *MockCatalogRepository) GetClass(ctx context.Context, classID uuid.UUID) (*domainCatalog.ClassOffering, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainCatalog.ClassOffering), args.Error(1)
}

func (m *MockCatalogRepository) ListSlots(ctx context.Context, classID uuid.UUID) ([]*domainCatalog.TimeSlot, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainCatalog.TimeSlot), args.Error(1)
}

func TestService_ListClasses(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo)

	classes := []*domainCatalog.ClassOffering{
		{ID: uuid.New(), Name: "Piano Basics", Price: 30000, MaxCapacity: 5, CategoryName: "Music", TeacherName: "Kim"},
		{ID: uuid.New(), Name: "Watercolor", Price: 25000, MaxCapacity: 8, CategoryName: "Art", TeacherName: "Lee"},
	}
	repo.On("ListClasses", mock.Anything).Return(classes, nil)

	resp, err := svc.ListClasses(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Piano Basics", resp[0].Name)
	assert.Equal(t, "Music", resp[0].Category)
}

func TestService_GetClass_NotFound(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo)

	classID := uuid.New()
	repo.On("GetClass", mock.Anything, classID).Return(nil, domainCatalog.ErrClassNotFound)

	resp, err := svc.GetClass(context.Background(), classID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainCatalog.ErrClassNotFound)
}

func TestService_ListSlots(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo)

	classID := uuid.New()
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	slots := []*domainCatalog.TimeSlot{
		{ID: uuid.New(), ClassID: classID, StartAt: start, EndAt: start.Add(time.Hour)},
	}
	repo.On("ListSlots", mock.Anything, classID).Return(slots, nil)

	resp, err := svc.ListSlots(context.Background(), classID)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, classID, resp[0].ClassID)
	assert.True(t, resp[0].EndAt.After(resp[0].StartAt))
}

func TestService_ListSlots_UnknownClass(t *testing.T) {
	repo := &MockCatalogRepository{}
	svc := NewService(repo)

	classID := uuid.New()
	repo.On("ListSlots", mock.Anything, classID).Return(nil, domainCatalog.ErrClassNotFound)

	resp, err := svc.ListSlots(context.Background(), classID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainCatalog.ErrClassNotFound)
}
