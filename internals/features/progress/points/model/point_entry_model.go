package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Ledger poin append-only. Tidak ada kolom saldo berjalan:
// total selalu diturunkan dari SUM baris yang cocok.
type PointEntryModel struct {
	PointEntryID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:point_entry_id" json:"point_entry_id"`
	PointEntryStudentID uuid.UUID      `gorm:"type:uuid;not null;index;column:point_entry_student_id" json:"point_entry_student_id"`
	PointEntryDate      datatypes.Date `gorm:"not null;index;column:point_entry_date" json:"point_entry_date"`
	PointEntryType      string         `gorm:"not null;index;column:point_entry_type" json:"point_entry_type"`
	PointEntryPoints    int            `gorm:"not null;column:point_entry_points" json:"point_entry_points"` // boleh negatif (penalty)
	PointEntryReason    string         `gorm:"column:point_entry_reason" json:"point_entry_reason"`
	PointEntryTeacherID *uuid.UUID     `gorm:"type:uuid;column:point_entry_teacher_id" json:"point_entry_teacher_id,omitempty"`

	PointEntryCreatedAt time.Time `gorm:"column:point_entry_created_at;autoCreateTime" json:"point_entry_created_at"`
}

func (PointEntryModel) TableName() string { return "student_points" }

func (m *PointEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.PointEntryID == uuid.Nil {
		m.PointEntryID = uuid.New()
	}
	return nil
}
