package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Kehadiran: satu baris per (santri, tanggal), status present|absent.
type AttendanceModel struct {
	AttendanceID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceStudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:ux_attendance_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceDate      datatypes.Date `gorm:"not null;uniqueIndex:ux_attendance_student_date;column:attendance_date" json:"attendance_date"`
	AttendanceStatus    string         `gorm:"not null;column:attendance_status" json:"attendance_status"`

	AttendanceTeacherID *uuid.UUID `gorm:"type:uuid;column:attendance_teacher_id" json:"attendance_teacher_id,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "student_attendance" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
