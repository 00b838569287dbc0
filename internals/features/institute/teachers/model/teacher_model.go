package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID     uuid.UUID  `gorm:"type:uuid;primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherName   string     `gorm:"not null;column:teacher_name" json:"teacher_name"`
	TeacherPhone  *string    `gorm:"column:teacher_phone" json:"teacher_phone,omitempty"`
	TeacherUserID *uuid.UUID `gorm:"type:uuid;column:teacher_user_id" json:"teacher_user_id,omitempty"` // akun login, opsional

	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
