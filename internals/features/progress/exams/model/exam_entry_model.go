package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Satu baris per sesi ujian. attempt_number > 1 artinya ujian ulang.
type ExamEntryModel struct {
	ExamEntryID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:exam_entry_id" json:"exam_entry_id"`
	ExamEntryStudentID uuid.UUID      `gorm:"type:uuid;not null;index;column:exam_entry_student_id" json:"exam_entry_student_id"`
	ExamEntryDate      datatypes.Date `gorm:"not null;index;column:exam_entry_date" json:"exam_entry_date"`
	ExamEntryAttempt   int            `gorm:"not null;default:1;column:exam_entry_attempt" json:"exam_entry_attempt"`

	// Label bagian/marhalah tergantung jenjang (mis. "جزء عم" atau "المرحلة الأولى")
	ExamEntryStage string `gorm:"column:exam_entry_stage" json:"exam_entry_stage"`

	// Sub-nilai: skala 0-10 untuk tamhidi/tilawah, 0-100 untuk hafizh
	ExamEntryMemorizationScore *float64 `gorm:"column:exam_entry_memorization_score" json:"exam_entry_memorization_score,omitempty"`
	ExamEntryTajwidScore       *float64 `gorm:"column:exam_entry_tajwid_score" json:"exam_entry_tajwid_score,omitempty"`
	ExamEntryFluencyScore      *float64 `gorm:"column:exam_entry_fluency_score" json:"exam_entry_fluency_score,omitempty"`

	ExamEntryGrade string  `gorm:"column:exam_entry_grade" json:"exam_entry_grade"`
	ExamEntryNotes *string `gorm:"column:exam_entry_notes" json:"exam_entry_notes,omitempty"`

	ExamEntryCreatedAt time.Time `gorm:"column:exam_entry_created_at;autoCreateTime" json:"exam_entry_created_at"`
	ExamEntryUpdatedAt time.Time `gorm:"column:exam_entry_updated_at;autoUpdateTime" json:"exam_entry_updated_at"`
}

func (ExamEntryModel) TableName() string { return "student_exams" }

func (m *ExamEntryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExamEntryID == uuid.Nil {
		m.ExamEntryID = uuid.New()
	}
	return nil
}
