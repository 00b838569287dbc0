package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Setoran harian santri non-pemula. Maksimal SATU baris per
// (santri, tanggal); penulisan ulang lewat upsert + merge eksplisit,
// lihat service.UpsertDailyWork.
type DailyWorkModel struct {
	DailyWorkID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:daily_work_id" json:"daily_work_id"`
	DailyWorkStudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_daily_work_student_date;column:daily_work_student_id" json:"daily_work_student_id"`
	DailyWorkDate      datatypes.Date `gorm:"not null;uniqueIndex:ux_daily_work_student_date;column:daily_work_date" json:"daily_work_date"`

	// Hafalan baru (satu nilai untuk seluruh setoran hari itu)
	DailyWorkRecitationCount int           `gorm:"not null;default:0;column:daily_work_recitation_count" json:"daily_work_recitation_count"`
	DailyWorkRecitationPages pq.Int64Array `gorm:"type:int[];column:daily_work_recitation_pages" json:"daily_work_recitation_pages"`
	DailyWorkRecitationGrade *string       `gorm:"column:daily_work_recitation_grade" json:"daily_work_recitation_grade,omitempty"`

	// Muraja'ah
	DailyWorkReviewCount int           `gorm:"not null;default:0;column:daily_work_review_count" json:"daily_work_review_count"`
	DailyWorkReviewPages pq.Int64Array `gorm:"type:int[];column:daily_work_review_pages" json:"daily_work_review_pages"`
	DailyWorkReviewGrade *string       `gorm:"column:daily_work_review_grade" json:"daily_work_review_grade,omitempty"`

	// Hadits
	DailyWorkHadithCount int     `gorm:"not null;default:0;column:daily_work_hadith_count" json:"daily_work_hadith_count"`
	DailyWorkHadithGrade *string `gorm:"column:daily_work_hadith_grade" json:"daily_work_hadith_grade,omitempty"`

	DailyWorkBehaviorGrade *string `gorm:"column:daily_work_behavior_grade" json:"daily_work_behavior_grade,omitempty"`
	DailyWorkNotes         *string `gorm:"column:daily_work_notes" json:"daily_work_notes,omitempty"`
	DailyWorkBonusPoints   int     `gorm:"not null;default:0;column:daily_work_bonus_points" json:"daily_work_bonus_points"`

	DailyWorkTeacherID *uuid.UUID `gorm:"type:uuid;column:daily_work_teacher_id" json:"daily_work_teacher_id,omitempty"`

	DailyWorkCreatedAt time.Time `gorm:"column:daily_work_created_at;autoCreateTime" json:"daily_work_created_at"`
	DailyWorkUpdatedAt time.Time `gorm:"column:daily_work_updated_at;autoUpdateTime" json:"daily_work_updated_at"`
}

func (DailyWorkModel) TableName() string { return "student_daily_work" }

func (m *DailyWorkModel) BeforeCreate(tx *gorm.DB) error {
	if m.DailyWorkID == uuid.Nil {
		m.DailyWorkID = uuid.New()
	}
	return nil
}
