package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name  *string `json:"name,omitempty"`
	Email string  `gorm:"uniqueIndex;not null" json:"email"`

	// bcrypt hash; nil for Google-only accounts.
	Password *string `json:"-"`

	Role string `gorm:"not null;default:'USER';index" json:"role"`

	AuthProvider string  `gorm:"not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
