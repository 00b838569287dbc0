package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Santri. Status non-aktif TIDAK disimpan di sini melainkan lewat
// keberadaan baris di discontinued_students (side table), supaya
// seluruh riwayat setoran/kehadiran tetap utuh.
type StudentModel struct {
	StudentID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	StudentName          string     `gorm:"not null;column:student_name" json:"student_name"`
	StudentLevel         string     `gorm:"not null;column:student_level" json:"student_level"` // تمهيدي | تلاوة | حافظ
	StudentCircleID      *uuid.UUID `gorm:"type:uuid;column:student_circle_id" json:"student_circle_id,omitempty"`
	StudentGuardianPhone *string    `gorm:"column:student_guardian_phone" json:"student_guardian_phone,omitempty"`
	StudentNotes         *string    `gorm:"column:student_notes" json:"student_notes,omitempty"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
