package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classbook/internal/database"
	"classbook/internal/domain/catalog"
	"classbook/internal/domain/reservation"
	"classbook/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const confirmedReservationIndex = "idx_confirmed_reservation"

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505) on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}

// ReservationRepository implements reservation.Repository on gorm.
type ReservationRepository struct {
	db *database.Database
}

func NewReservationRepository(db *database.Database) reservation.Repository {
	return &ReservationRepository{db: db}
}

// bookSlot performs the capacity-checked insert. Callers must run it inside
// a transaction: the FOR UPDATE lock on the slot row serializes concurrent
// bookings of the same slot, so the duplicate and capacity checks see the
// committed state of every earlier booking. The partial unique index on
// (time_slot_id, student_id) WHERE status = 1 backs the duplicate check.
func bookSlot(tx *gorm.DB, slotID, studentID uuid.UUID) (*models.ReservationModel, error) {
	var slot models.TimeSlotModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, "id = ?", slotID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock time slot: %w", err)
	}

	var duplicate int64
	err = tx.Model(&models.ReservationModel{}).
		Where("time_slot_id = ? AND student_id = ? AND status = ?",
			slotID, studentID, int(reservation.StatusConfirmed)).
		Count(&duplicate).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reservation: %w", err)
	}
	if duplicate > 0 {
		return nil, reservation.ErrAlreadyReserved
	}

	var class models.ClassModel
	if err := tx.First(&class, "id = ?", slot.ClassID).Error; err != nil {
		return nil, fmt.Errorf("failed to load class: %w", err)
	}

	var confirmed int64
	err = tx.Model(&models.ReservationModel{}).
		Where("time_slot_id = ? AND status = ?", slotID, int(reservation.StatusConfirmed)).
		Count(&confirmed).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	if confirmed >= int64(class.MaxCapacity) {
		return nil, reservation.ErrCapacityExceeded
	}

	now := time.Now()
	dbModel := &models.ReservationModel{
		ID:         uuid.New(),
		TimeSlotID: slotID,
		StudentID:  studentID,
		Status:     int(reservation.StatusConfirmed),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tx.Create(dbModel).Error; err != nil {
		if isUniqueViolation(err, confirmedReservationIndex) {
			return nil, reservation.ErrAlreadyReserved
		}
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	return dbModel, nil
}

func (r *ReservationRepository) Create(ctx context.Context, slotID, studentID uuid.UUID) (*reservation.Reservation, error) {
	var created *models.ReservationModel

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = bookSlot(tx, slotID, studentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toReservationEntity(created), nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error) {
	var dbModel models.ReservationModel
	err := r.db.DB.WithContext(ctx).First(&dbModel, "id = ?", reservationID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reservation.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return toReservationEntity(&dbModel), nil
}

// UpdateStatus flips the row only while it still holds the from status.
// When the guarded update touches nothing, the current row decides the
// error: a concurrent cancel that lost the race sees ErrAlreadyCancelled.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, from, to reservation.Status) (*reservation.Reservation, error) {
	result := r.db.DB.WithContext(ctx).Model(&models.ReservationModel{}).
		Where("id = ? AND status = ?", reservationID, int(from)).
		Updates(map[string]interface{}{
			"status":     int(to),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		current, err := r.GetByID(ctx, reservationID)
		if err != nil {
			return nil, err
		}
		if current.Status == reservation.StatusCancelled {
			return nil, reservation.ErrAlreadyCancelled
		}
		return nil, reservation.ErrNotConfirmed
	}

	return r.GetByID(ctx, reservationID)
}

func (r *ReservationRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]reservation.ScheduleEntry, error) {
	var rows []struct {
		ReservationID uuid.UUID
		Status        int
		TimeSlotID    uuid.UUID
		StartAt       time.Time
		EndAt         time.Time
		ClassID       uuid.UUID
		ClassName     string
		Location      string
		Price         int
		TeacherName   string
	}

	err := r.db.DB.WithContext(ctx).
		Table("reservations").
		Select(`reservations.id AS reservation_id, reservations.status,
			time_slots.id AS time_slot_id, time_slots.start_at, time_slots.end_at,
			classes.id AS class_id, classes.name AS class_name, classes.location, classes.price,
			users.name AS teacher_name`).
		Joins("JOIN time_slots ON time_slots.id = reservations.time_slot_id").
		Joins("JOIN classes ON classes.id = time_slots.class_id").
		Joins("JOIN users ON users.id = classes.teacher_id").
		Where("reservations.student_id = ?", studentID).
		Order("time_slots.start_at").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	entries := make([]reservation.ScheduleEntry, len(rows))
	for i, row := range rows {
		entries[i] = reservation.ScheduleEntry{
			ReservationID: row.ReservationID,
			Status:        reservation.Status(row.Status),
			TimeSlotID:    row.TimeSlotID,
			StartAt:       row.StartAt,
			EndAt:         row.EndAt,
			ClassID:       row.ClassID,
			ClassName:     row.ClassName,
			Location:      row.Location,
			Price:         row.Price,
			TeacherName:   row.TeacherName,
		}
	}

	return entries, nil
}

// ScheduleForTeacher left-joins the confirmed count so slots nobody booked
// still come back, with count 0.
func (r *ReservationRepository) ScheduleForTeacher(ctx context.Context, teacherID uuid.UUID) ([]reservation.TeacherScheduleEntry, error) {
	var rows []struct {
		TimeSlotID     uuid.UUID
		StartAt        time.Time
		EndAt          time.Time
		ClassID        uuid.UUID
		ClassName      string
		MaxCapacity    int
		ConfirmedCount int64
	}

	err := r.db.DB.WithContext(ctx).
		Table("time_slots").
		Select(`time_slots.id AS time_slot_id, time_slots.start_at, time_slots.end_at,
			classes.id AS class_id, classes.name AS class_name, classes.max_capacity,
			COUNT(reservations.id) AS confirmed_count`).
		Joins("JOIN classes ON classes.id = time_slots.class_id").
		Joins("LEFT JOIN reservations ON reservations.time_slot_id = time_slots.id AND reservations.status = ?",
			int(reservation.StatusConfirmed)).
		Where("classes.teacher_id = ?", teacherID).
		Group("time_slots.id, time_slots.start_at, time_slots.end_at, classes.id, classes.name, classes.max_capacity").
		Order("time_slots.start_at").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load teacher schedule: %w", err)
	}

	entries := make([]reservation.TeacherScheduleEntry, len(rows))
	for i, row := range rows {
		entries[i] = reservation.TeacherScheduleEntry{
			TimeSlotID:     row.TimeSlotID,
			StartAt:        row.StartAt,
			EndAt:          row.EndAt,
			ClassID:        row.ClassID,
			ClassName:      row.ClassName,
			MaxCapacity:    row.MaxCapacity,
			ConfirmedCount: row.ConfirmedCount,
		}
	}

	return entries, nil
}

// EnrolledStudents only answers for slots owned by the requesting teacher.
func (r *ReservationRepository) EnrolledStudents(ctx context.Context, teacherID, slotID uuid.UUID) ([]reservation.EnrolledStudent, error) {
	var owned int64
	err := r.db.DB.WithContext(ctx).
		Table("time_slots").
		Joins("JOIN classes ON classes.id = time_slots.class_id").
		Where("time_slots.id = ? AND classes.teacher_id = ?", slotID, teacherID).
		Count(&owned).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check slot ownership: %w", err)
	}
	if owned == 0 {
		return nil, catalog.ErrSlotNotFound
	}

	var rows []struct {
		ReservationID uuid.UUID
		StudentID     uuid.UUID
		Name          string
		Email         string
	}

	err = r.db.DB.WithContext(ctx).
		Table("reservations").
		Select("reservations.id AS reservation_id, users.id AS student_id, users.name, users.email").
		Joins("JOIN users ON users.id = reservations.student_id").
		Where("reservations.time_slot_id = ? AND reservations.status = ?",
			slotID, int(reservation.StatusConfirmed)).
		Order("users.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enrolled students: %w", err)
	}

	students := make([]reservation.EnrolledStudent, len(rows))
	for i, row := range rows {
		students[i] = reservation.EnrolledStudent{
			ReservationID: row.ReservationID,
			StudentID:     row.StudentID,
			Name:          row.Name,
			Email:         row.Email,
		}
	}

	return students, nil
}

func toReservationEntity(m *models.ReservationModel) *reservation.Reservation {
	return &reservation.Reservation{
		ID:         m.ID,
		TimeSlotID: m.TimeSlotID,
		StudentID:  m.StudentID,
		Status:     reservation.Status(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
