package postgres

import (
	"context"
	"errors"
	"fmt"

	"classbook/internal/database"
	"classbook/internal/domain/catalog"
	"classbook/internal/infrastructure/database/postgres/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository implements the read-only catalog.Repository on gorm.
type CatalogRepository struct {
	db *database.Database
}

func NewCatalogRepository(db *database.Database) catalog.Repository {
	return &CatalogRepository{db: db}
}

type classRow struct {
	models.ClassModel
	CategoryName string
	TeacherName  string
}

func (r *CatalogRepository) ListClasses(ctx context.Context) ([]*catalog.ClassOffering, error) {
	var rows []classRow
	err := r.db.DB.WithContext(ctx).
		Table("classes").
		Select("classes.*, categories.name AS category_name, users.name AS teacher_name").
		Joins("JOIN categories ON categories.id = classes.category_id").
		Joins("JOIN users ON users.id = classes.teacher_id").
		Order("classes.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}

	classes := make([]*catalog.ClassOffering, len(rows))
	for i := range rows {
		classes[i] = toClassEntity(&rows[i])
	}

	return classes, nil
}

func (r *CatalogRepository) GetClass(ctx context.Context, classID uuid.UUID) (*catalog.ClassOffering, error) {
	var row classRow
	err := r.db.DB.WithContext(ctx).
		Table("classes").
		Select("classes.*, categories.name AS category_name, users.name AS teacher_name").
		Joins("JOIN categories ON categories.id = classes.category_id").
		Joins("JOIN users ON users.id = classes.teacher_id").
		Where("classes.id = ?", classID).
		Take(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, catalog.ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}

	return toClassEntity(&row), nil
}

func (r *CatalogRepository) ListSlots(ctx context.Context, classID uuid.UUID) ([]*catalog.TimeSlot, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&models.ClassModel{}).
		Where("id = ?", classID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check class: %w", err)
	}
	if count == 0 {
		return nil, catalog.ErrClassNotFound
	}

	var dbModels []models.TimeSlotModel
	err := r.db.DB.WithContext(ctx).
		Where("class_id = ?", classID).
		Order("start_at").
		Find(&dbModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}

	slots := make([]*catalog.TimeSlot, len(dbModels))
	for i := range dbModels {
		slots[i] = &catalog.TimeSlot{
			ID:      dbModels[i].ID,
			ClassID: dbModels[i].ClassID,
			StartAt: dbModels[i].StartAt,
			EndAt:   dbModels[i].EndAt,
		}
	}

	return slots, nil
}

func toClassEntity(row *classRow) *catalog.ClassOffering {
	return &catalog.ClassOffering{
		ID:           row.ID,
		TeacherID:    row.TeacherID,
		CategoryID:   row.CategoryID,
		Name:         row.Name,
		Detail:       row.Detail,
		Curriculum:   row.Curriculum,
		Included:     row.Included,
		Required:     row.Required,
		Longitude:    row.Longitude,
		Latitude:     row.Latitude,
		Location:     row.Location,
		MaxCapacity:  row.MaxCapacity,
		Price:        row.Price,
		CreatedAt:    row.CreatedAt,
		CategoryName: row.CategoryName,
		TeacherName:  row.TeacherName,
	}
}
