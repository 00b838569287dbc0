package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Halaqah (kelompok setoran) dengan satu pengajar penanggung jawab.
type CircleModel struct {
	CircleID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:circle_id" json:"circle_id"`
	CircleName      string     `gorm:"not null;column:circle_name" json:"circle_name"`
	CircleTeacherID *uuid.UUID `gorm:"type:uuid;column:circle_teacher_id" json:"circle_teacher_id,omitempty"`

	CircleCreatedAt time.Time `gorm:"column:circle_created_at;autoCreateTime" json:"circle_created_at"`
	CircleUpdatedAt time.Time `gorm:"column:circle_updated_at;autoUpdateTime" json:"circle_updated_at"`
}

func (CircleModel) TableName() string { return "circles" }

func (m *CircleModel) BeforeCreate(tx *gorm.DB) error {
	if m.CircleID == uuid.Nil {
		m.CircleID = uuid.New()
	}
	return nil
}
