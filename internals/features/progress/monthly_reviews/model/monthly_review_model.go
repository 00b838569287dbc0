package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Penilaian muraja'ah bulanan: satu baris per (santri, bulan, tahun).
type MonthlyReviewModel struct {
	MonthlyReviewID        uuid.UUID `gorm:"type:uuid;primaryKey;column:monthly_review_id" json:"monthly_review_id"`
	MonthlyReviewStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_monthly_review_student_month;column:monthly_review_student_id" json:"monthly_review_student_id"`
	MonthlyReviewMonth     int       `gorm:"not null;uniqueIndex:ux_monthly_review_student_month;column:monthly_review_month" json:"monthly_review_month"` // 1..12
	MonthlyReviewYear      int       `gorm:"not null;uniqueIndex:ux_monthly_review_student_month;column:monthly_review_year" json:"monthly_review_year"`
	MonthlyReviewScore     int       `gorm:"not null;column:monthly_review_score" json:"monthly_review_score"` // 0..100
	MonthlyReviewNotes     *string   `gorm:"column:monthly_review_notes" json:"monthly_review_notes,omitempty"`

	MonthlyReviewCreatedAt time.Time `gorm:"column:monthly_review_created_at;autoCreateTime" json:"monthly_review_created_at"`
	MonthlyReviewUpdatedAt time.Time `gorm:"column:monthly_review_updated_at;autoUpdateTime" json:"monthly_review_updated_at"`
}

func (MonthlyReviewModel) TableName() string { return "monthly_reviews" }

func (m *MonthlyReviewModel) BeforeCreate(tx *gorm.DB) error {
	if m.MonthlyReviewID == uuid.Nil {
		m.MonthlyReviewID = uuid.New()
	}
	return nil
}
