// file: internals/features/progress/points/service/point_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/points/model"
)

// Reason baku untuk poin semangat yang lahir dari absensi.
const AttendanceReason = "attendance"

// EnsureEnthusiasmPoint menjamin TEPAT SATU poin semangat (+1) untuk
// (santri, tanggal) saat ditandai hadir: cek dulu, insert hanya kalau
// belum ada. Dipanggil berulang tidak menggandakan poin.
func EnsureEnthusiasmPoint(db *gorm.DB, studentID uuid.UUID, date datatypes.Date, teacherID *uuid.UUID) error {
	var n int64
	if err := db.Model(&model.PointEntryModel{}).
		Where("point_entry_student_id = ? AND point_entry_date = ? AND point_entry_type = ?",
			studentID, date, constants.PointTypeEnthusiasm).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	row := model.PointEntryModel{
		PointEntryStudentID: studentID,
		PointEntryDate:      date,
		PointEntryType:      constants.PointTypeEnthusiasm,
		PointEntryPoints:    1,
		PointEntryReason:    AttendanceReason,
		PointEntryTeacherID: teacherID,
	}
	return db.Create(&row).Error
}

// DeleteAllEnthusiasmPoints menghapus SEMUA poin semangat milik santri,
// tidak dibatasi tanggal. Aturan lama aplikasi: sekali absen, streak
// semangat hangus total. Sengaja dipertahankan apa adanya.
func DeleteAllEnthusiasmPoints(db *gorm.DB, studentID uuid.UUID) error {
	return db.Where("point_entry_student_id = ? AND point_entry_type = ?",
		studentID, constants.PointTypeEnthusiasm).
		Delete(&model.PointEntryModel{}).Error
}

// LeaderboardRow hasil SUM poin general per santri.
type LeaderboardRow struct {
	StudentID   uuid.UUID `gorm:"column:point_entry_student_id" json:"student_id"`
	StudentName string    `gorm:"column:student_name" json:"student_name"`
	TotalPoints int64     `gorm:"column:total_points" json:"total_points"`
}

// Leaderboard menghitung total poin general per santri aktif, urut menurun.
// Saldo selalu diturunkan dari ledger, tidak ada kolom running balance.
func Leaderboard(db *gorm.DB, circleID *uuid.UUID, limit int) ([]LeaderboardRow, error) {
	qry := db.Model(&model.PointEntryModel{}).
		Select("point_entry_student_id, students.student_name, SUM(point_entry_points) AS total_points").
		Joins("JOIN students ON students.student_id = point_entry_student_id").
		Where("point_entry_type = ?", constants.PointTypeGeneral).
		Where("point_entry_student_id NOT IN (SELECT discontinued_student_student_id FROM discontinued_students)").
		Group("point_entry_student_id, students.student_name").
		Order("total_points DESC")
	if circleID != nil {
		qry = qry.Where("students.student_circle_id = ?", *circleID)
	}
	if limit > 0 {
		qry = qry.Limit(limit)
	}

	var rows []LeaderboardRow
	if err := qry.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
