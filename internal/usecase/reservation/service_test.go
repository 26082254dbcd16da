package reservation

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	domainReservation "classbook/internal/domain/reservation"
	domainUser "classbook/internal/domain/user"
	"classbook/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, slotID, studentID uuid.UUID) (*domainReservation.Reservation, error) {
	args := m.Called(ctx, slotID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainReservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*domainReservation.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainReservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, from, to domainReservation.Status) (*domainReservation.Reservation, error) {
	args := m.Called(ctx, reservationID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainReservation.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]domainReservation.ScheduleEntry, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainReservation.ScheduleEntry), args.Error(1)
}

func (m *MockReservationRepository) ScheduleForTeacher(ctx context.Context, teacherID uuid.UUID) ([]domainReservation.TeacherScheduleEntry, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainReservation.TeacherScheduleEntry), args.Error(1)
}

func (m *MockReservationRepository) EnrolledStudents(ctx context.Context, teacherID, slotID uuid.UUID) ([]domainReservation.EnrolledStudent, error) {
	args := m.Called(ctx, teacherID, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domainReservation.EnrolledStudent), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domainUser.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domainUser.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domainUser.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domainUser.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, userID uuid.UUID, name string) error {
	args := m.Called(ctx, userID, name)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func newTestService(reservationRepo *MockReservationRepository, userRepo *MockUserRepository) *Service {
	return NewService(reservationRepo, userRepo)
}

func TestService_Create_Success(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	slotID := uuid.New()
	studentID := uuid.New()
	created := &domainReservation.Reservation{
		ID:         uuid.New(),
		TimeSlotID: slotID,
		StudentID:  studentID,
		Status:     domainReservation.StatusConfirmed,
		CreatedAt:  time.Now(),
	}

	userRepo.On("GetByID", mock.Anything, studentID).Return(&domainUser.User{ID: studentID}, nil)
	reservationRepo.On("Create", mock.Anything, slotID, studentID).Return(created, nil)

	resp, err := svc.Create(context.Background(), slotID, studentID)

	assert.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, "CONFIRMED", resp.Status)
	reservationRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestService_Create_UnknownStudent(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	studentID := uuid.New()
	userRepo.On("GetByID", mock.Anything, studentID).Return(nil, domainUser.ErrUserNotFound)

	resp, err := svc.Create(context.Background(), uuid.New(), studentID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainUser.ErrUserNotFound)
	reservationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_RepositoryErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "duplicate reservation", repoErr: domainReservation.ErrAlreadyReserved},
		{name: "slot full", repoErr: domainReservation.ErrCapacityExceeded},
		{name: "unknown slot", repoErr: errors.New("record not found")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservationRepo := &MockReservationRepository{}
			userRepo := &MockUserRepository{}
			svc := newTestService(reservationRepo, userRepo)

			slotID := uuid.New()
			studentID := uuid.New()
			userRepo.On("GetByID", mock.Anything, studentID).Return(&domainUser.User{ID: studentID}, nil)
			reservationRepo.On("Create", mock.Anything, slotID, studentID).Return(nil, tt.repoErr)

			resp, err := svc.Create(context.Background(), slotID, studentID)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.repoErr)
		})
	}
}

func TestService_Cancel_Success(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	studentID := uuid.New()
	reservationID := uuid.New()
	existing := &domainReservation.Reservation{
		ID:        reservationID,
		StudentID: studentID,
		Status:    domainReservation.StatusConfirmed,
	}
	cancelled := &domainReservation.Reservation{
		ID:        reservationID,
		StudentID: studentID,
		Status:    domainReservation.StatusCancelled,
	}

	reservationRepo.On("GetByID", mock.Anything, reservationID).Return(existing, nil)
	reservationRepo.On("UpdateStatus", mock.Anything, reservationID,
		domainReservation.StatusConfirmed, domainReservation.StatusCancelled).Return(cancelled, nil)

	resp, err := svc.Cancel(context.Background(), reservationID, studentID)

	assert.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
	reservationRepo.AssertExpectations(t)
}

func TestService_Cancel_NotOwner(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	reservationID := uuid.New()
	existing := &domainReservation.Reservation{
		ID:        reservationID,
		StudentID: uuid.New(),
		Status:    domainReservation.StatusConfirmed,
	}
	reservationRepo.On("GetByID", mock.Anything, reservationID).Return(existing, nil)

	resp, err := svc.Cancel(context.Background(), reservationID, uuid.New())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainReservation.ErrNotOwner)
	reservationRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	studentID := uuid.New()
	reservationID := uuid.New()
	existing := &domainReservation.Reservation{
		ID:        reservationID,
		StudentID: studentID,
		Status:    domainReservation.StatusCancelled,
	}
	reservationRepo.On("GetByID", mock.Anything, reservationID).Return(existing, nil)

	resp, err := svc.Cancel(context.Background(), reservationID, studentID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainReservation.ErrAlreadyCancelled)
	reservationRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Cancel_NotConfirmed(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	studentID := uuid.New()
	reservationID := uuid.New()
	existing := &domainReservation.Reservation{
		ID:        reservationID,
		StudentID: studentID,
		Status:    domainReservation.Status(0),
	}
	reservationRepo.On("GetByID", mock.Anything, reservationID).Return(existing, nil)

	resp, err := svc.Cancel(context.Background(), reservationID, studentID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainReservation.ErrNotConfirmed)
}

func TestService_Cancel_LostRaceToConcurrentCancel(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	studentID := uuid.New()
	reservationID := uuid.New()
	existing := &domainReservation.Reservation{
		ID:        reservationID,
		StudentID: studentID,
		Status:    domainReservation.StatusConfirmed,
	}

	// The read sees CONFIRMED, but another cancel flips the row before the
	// guarded update runs. The repository reports the lost race.
	reservationRepo.On("GetByID", mock.Anything, reservationID).Return(existing, nil)
	reservationRepo.On("UpdateStatus", mock.Anything, reservationID,
		domainReservation.StatusConfirmed, domainReservation.StatusCancelled).
		Return(nil, domainReservation.ErrAlreadyCancelled)

	resp, err := svc.Cancel(context.Background(), reservationID, studentID)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainReservation.ErrAlreadyCancelled)
}

func TestService_Cancel_NotFound(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	reservationID := uuid.New()
	reservationRepo.On("GetByID", mock.Anything, reservationID).Return(nil, domainReservation.ErrReservationNotFound)

	resp, err := svc.Cancel(context.Background(), reservationID, uuid.New())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domainReservation.ErrReservationNotFound)
}

func TestService_MySchedule_Partition(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	studentID := uuid.New()
	entries := []domainReservation.ScheduleEntry{
		{ReservationID: uuid.New(), Status: domainReservation.StatusConfirmed, StartAt: now.Add(2 * time.Hour), ClassName: "Piano"},
		{ReservationID: uuid.New(), Status: domainReservation.StatusCancelled, StartAt: now.Add(-2 * time.Hour), ClassName: "Violin"},
		{ReservationID: uuid.New(), Status: domainReservation.StatusConfirmed, StartAt: now, ClassName: "Guitar"},
		{ReservationID: uuid.New(), Status: domainReservation.StatusConfirmed, StartAt: now.Add(24 * time.Hour), ClassName: "Drums"},
	}
	reservationRepo.On("ListByStudent", mock.Anything, studentID).Return(entries, nil)

	resp, err := svc.MySchedule(context.Background(), studentID)

	assert.NoError(t, err)
	assert.Len(t, resp.UpcomingSchedules, 2)
	// Entries starting exactly now land in the past bucket.
	assert.Len(t, resp.PastSchedules, 2)
	assert.Equal(t, len(entries), len(resp.UpcomingSchedules)+len(resp.PastSchedules))
	assert.Equal(t, "Piano", resp.UpcomingSchedules[0].ClassName)
	assert.Equal(t, "Violin", resp.PastSchedules[0].ClassName)
}

func TestService_MySchedule_Empty(t *testing.T) {
	reservationRepo := &MockReservationRepository{}
	userRepo := &MockUserRepository{}
	svc := newTestService(reservationRepo, userRepo)

	studentID := uuid.New()
	reservationRepo.On("ListByStudent", mock.Anything, studentID).Return([]domainReservation.ScheduleEntry{}, nil)

	resp, err := svc.MySchedule(context.Background(), studentID)

	assert.NoError(t, err)
	assert.NotNil(t, resp.UpcomingSchedules)
	assert.NotNil(t, resp.PastSchedules)
	assert.Empty(t, resp.UpcomingSchedules)
	assert.Empty(t, resp.PastSchedules)
}
