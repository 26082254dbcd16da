package database

import (
	"fmt"
	"time"

	"classbook/internal/config"
	"classbook/internal/infrastructure/database/postgres/models"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := cfg.Database.DSN()

	logMode := gormlogger.Warn
	if cfg.Server.Environment != "production" {
		logMode = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Migrate creates the schema and the constraints the booking invariants
// rely on. The partial unique index backs the one-confirmed-reservation-
// per-(slot, student) rule at the database level.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(
		&models.UserModel{},
		&models.RefreshTokenModel{},
		&models.CategoryModel{},
		&models.ClassModel{},
		&models.TimeSlotModel{},
		&models.ReservationModel{},
		&models.PaymentModel{},
	); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	if err := d.DB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_confirmed_reservation
		 ON reservations (time_slot_id, student_id)
		 WHERE status = 1`,
	).Error; err != nil {
		return fmt.Errorf("creating confirmed reservation index: %w", err)
	}

	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
