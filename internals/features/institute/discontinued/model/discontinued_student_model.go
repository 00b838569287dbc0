package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Salinan identitas santri yang berhenti. Keberadaan baris di tabel ini
// adalah SATU-SATUNYA penanda non-aktif: roster dan semua agregasi wajib
// mengecualikan student_id yang ada di sini, sementara baris historis di
// tabel lain dibiarkan utuh.
type DiscontinuedStudentModel struct {
	DiscontinuedStudentID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:discontinued_student_id" json:"discontinued_student_id"`
	DiscontinuedStudentStudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex;column:discontinued_student_student_id" json:"discontinued_student_student_id"`
	DiscontinuedStudentName      string         `gorm:"not null;column:discontinued_student_name" json:"discontinued_student_name"`
	DiscontinuedStudentLevel     string         `gorm:"column:discontinued_student_level" json:"discontinued_student_level"`
	DiscontinuedStudentCircleID  *uuid.UUID     `gorm:"type:uuid;column:discontinued_student_circle_id" json:"discontinued_student_circle_id,omitempty"`
	DiscontinuedStudentReason    string         `gorm:"column:discontinued_student_reason" json:"discontinued_student_reason"`
	DiscontinuedStudentDate      datatypes.Date `gorm:"not null;column:discontinued_student_date" json:"discontinued_student_date"`

	DiscontinuedStudentCreatedAt time.Time `gorm:"column:discontinued_student_created_at;autoCreateTime" json:"discontinued_student_created_at"`
}

func (DiscontinuedStudentModel) TableName() string { return "discontinued_students" }

func (m *DiscontinuedStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.DiscontinuedStudentID == uuid.Nil {
		m.DiscontinuedStudentID = uuid.New()
	}
	return nil
}
