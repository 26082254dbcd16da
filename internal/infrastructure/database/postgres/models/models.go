package models

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHashed string    `gorm:"type:varchar(255);not null"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Role           string    `gorm:"type:varchar(20);not null;default:'user'"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Token     string    `gorm:"type:varchar(500);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

type CategoryModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(100);not null;uniqueIndex"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

type ClassModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Detail      string    `gorm:"type:varchar(255)"`
	Curriculum  string    `gorm:"type:varchar(255)"`
	Included    string    `gorm:"type:varchar(255)"`
	Required    string    `gorm:"type:varchar(255)"`
	Longitude   string    `gorm:"type:varchar(20)"`
	Latitude    string    `gorm:"type:varchar(20)"`
	Location    string    `gorm:"type:varchar(255)"`
	MaxCapacity int       `gorm:"not null"`
	Price       int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (ClassModel) TableName() string {
	return "classes"
}

type TimeSlotModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClassID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartAt time.Time `gorm:"not null;index"`
	EndAt   time.Time `gorm:"not null"`
}

func (TimeSlotModel) TableName() string {
	return "time_slots"
}

type ReservationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TimeSlotID uuid.UUID `gorm:"type:uuid;not null;index"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     int       `gorm:"type:smallint;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ReservationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OrderID       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	PaymentKey    string    `gorm:"type:varchar(200);not null"`
	Method        string    `gorm:"type:varchar(50)"`
	Status        string    `gorm:"type:varchar(50)"`
	RequestedAt   time.Time
	ApprovedAt    time.Time
	TotalAmount   int       `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
