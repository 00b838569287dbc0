// file: internals/features/progress/attendance/service/attendance_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/attendance/model"
	pointService "tahfidzku_backend/internals/features/progress/points/service"
)

var ErrInvalidStatus = errors.New("status kehadiran tidak dikenal")

// MarkAttendance meng-upsert baris kehadiran (santri, tanggal) lalu
// menjalankan efek samping poin semangat:
//   - present → pastikan tepat satu poin enthusiasm (+1, reason attendance)
//     untuk tanggal itu;
//   - absent  → hapus SEMUA poin enthusiasm milik santri (aturan global,
//     bukan per tanggal — perilaku lama yang dipertahankan).
//
// Keduanya berjalan dalam satu transaksi supaya tidak ada state setengah jadi.
func MarkAttendance(db *gorm.DB, studentID uuid.UUID, date datatypes.Date, status string, teacherID *uuid.UUID) (*model.AttendanceModel, error) {
	if status != constants.AttendancePresent && status != constants.AttendanceAbsent {
		return nil, ErrInvalidStatus
	}

	row := model.AttendanceModel{
		AttendanceStudentID: studentID,
		AttendanceDate:      date,
		AttendanceStatus:    status,
		AttendanceTeacherID: teacherID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_student_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_teacher_id"}),
		}).Create(&row).Error; err != nil {
			return err
		}

		if status == constants.AttendancePresent {
			return pointService.EnsureEnthusiasmPoint(tx, studentID, date, teacherID)
		}
		return pointService.DeleteAllEnthusiasmPoints(tx, studentID)
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}
