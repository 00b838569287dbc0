package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Setoran santri tamhidi: satu baris per halaman yang dicoba,
// boleh banyak baris per (santri, tanggal). Satu halaman = 10 baris.
type BeginnerRecitationModel struct {
	BeginnerRecitationID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:beginner_recitation_id" json:"beginner_recitation_id"`
	BeginnerRecitationStudentID uuid.UUID      `gorm:"type:uuid;not null;index;column:beginner_recitation_student_id" json:"beginner_recitation_student_id"`
	BeginnerRecitationDate      datatypes.Date `gorm:"not null;index;column:beginner_recitation_date" json:"beginner_recitation_date"`

	BeginnerRecitationPage  int           `gorm:"not null;column:beginner_recitation_page" json:"beginner_recitation_page"`
	BeginnerRecitationLines pq.Int64Array `gorm:"type:int[];column:beginner_recitation_lines" json:"beginner_recitation_lines"` // nomor baris 1..10
	BeginnerRecitationGrade string        `gorm:"not null;column:beginner_recitation_grade" json:"beginner_recitation_grade"`

	BeginnerRecitationTeacherID *uuid.UUID `gorm:"type:uuid;column:beginner_recitation_teacher_id" json:"beginner_recitation_teacher_id,omitempty"`

	BeginnerRecitationCreatedAt time.Time `gorm:"column:beginner_recitation_created_at;autoCreateTime" json:"beginner_recitation_created_at"`
	BeginnerRecitationUpdatedAt time.Time `gorm:"column:beginner_recitation_updated_at;autoUpdateTime" json:"beginner_recitation_updated_at"`
}

func (BeginnerRecitationModel) TableName() string { return "student_beginner_recitations" }

func (m *BeginnerRecitationModel) BeforeCreate(tx *gorm.DB) error {
	if m.BeginnerRecitationID == uuid.Nil {
		m.BeginnerRecitationID = uuid.New()
	}
	return nil
}
