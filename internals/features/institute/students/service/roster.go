// file: internals/features/institute/students/service/roster.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	discontinuedModel "tahfidzku_backend/internals/features/institute/discontinued/model"
	"tahfidzku_backend/internals/features/institute/students/model"
)

// GetActiveRoster mengambil daftar santri aktif terurut nama.
// Santri yang tercatat berhenti disingkirkan DI SINI, sebelum data
// dipakai agregasi — bukan disembunyikan belakangan.
func GetActiveRoster(db *gorm.DB, circleID *uuid.UUID) ([]model.StudentModel, error) {
	qry := db.Model(&model.StudentModel{}).
		Where("student_id NOT IN (?)",
			db.Model(&discontinuedModel.DiscontinuedStudentModel{}).
				Select("discontinued_student_student_id"),
		)
	if circleID != nil {
		qry = qry.Where("student_circle_id = ?", *circleID)
	}

	var rows []model.StudentModel
	if err := qry.Order("student_name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// IsDiscontinued mengecek satu santri.
func IsDiscontinued(db *gorm.DB, studentID uuid.UUID) (bool, error) {
	var n int64
	err := db.Model(&discontinuedModel.DiscontinuedStudentModel{}).
		Where("discontinued_student_student_id = ?", studentID).
		Count(&n).Error
	return n > 0, err
}
