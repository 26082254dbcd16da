package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHashed string
	Name           string
	Role           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RefreshToken is the single stored refresh token for a user. Login and
// refresh replace the row rather than appending a new one.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *RefreshToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
