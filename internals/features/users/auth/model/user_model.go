package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Akun login (admin institut atau pengajar). Password selalu bcrypt —
// perbandingan plaintext dari aplikasi lama tidak dibawa.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserRole     string    `gorm:"not null;column:user_role" json:"user_role"` // admin | teacher

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
