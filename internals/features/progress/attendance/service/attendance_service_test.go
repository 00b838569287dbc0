// file: internals/features/progress/attendance/service/attendance_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tahfidzku_backend/internals/constants"
	attendancemodel "tahfidzku_backend/internals/features/progress/attendance/model"
	pointmodel "tahfidzku_backend/internals/features/progress/points/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&attendancemodel.AttendanceModel{}, &pointmodel.PointEntryModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func countEnthusiasm(t *testing.T, db *gorm.DB, studentID uuid.UUID) int64 {
	t.Helper()
	var n int64
	err := db.Model(&pointmodel.PointEntryModel{}).
		Where("point_entry_student_id = ? AND point_entry_type = ?", studentID, constants.PointTypeEnthusiasm).
		Count(&n).Error
	if err != nil {
		t.Fatalf("hitung poin: %v", err)
	}
	return n
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	db := setupDB(t)
	_, err := MarkAttendance(db, uuid.New(), day(2026, 3, 2), "late", nil)
	if err != ErrInvalidStatus {
		t.Errorf("err = %v, mau ErrInvalidStatus", err)
	}
}

func TestMarkPresentTwiceKeepsOnePoint(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	d := day(2026, 3, 2)

	for i := 0; i < 2; i++ {
		if _, err := MarkAttendance(db, studentID, d, constants.AttendancePresent, nil); err != nil {
			t.Fatalf("mark ke-%d: %v", i+1, err)
		}
	}

	// upsert: tetap satu baris kehadiran
	var rows int64
	if err := db.Model(&attendancemodel.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID).
		Count(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("baris kehadiran = %d, mau 1", rows)
	}

	if n := countEnthusiasm(t, db, studentID); n != 1 {
		t.Errorf("poin semangat = %d, mau tepat 1", n)
	}
}

func TestMarkAbsentDeletesAllEnthusiasmPoints(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()

	// hadir tiga hari → tiga poin semangat
	for d := 2; d <= 4; d++ {
		if _, err := MarkAttendance(db, studentID, day(2026, 3, d), constants.AttendancePresent, nil); err != nil {
			t.Fatal(err)
		}
	}
	if n := countEnthusiasm(t, db, studentID); n != 3 {
		t.Fatalf("poin semangat awal = %d, mau 3", n)
	}

	// sekali absen: SELURUH poin semangat hangus, bukan cuma hari itu
	if _, err := MarkAttendance(db, studentID, day(2026, 3, 5), constants.AttendanceAbsent, nil); err != nil {
		t.Fatal(err)
	}
	if n := countEnthusiasm(t, db, studentID); n != 0 {
		t.Errorf("poin semangat setelah absen = %d, mau 0", n)
	}
}

func TestMarkAbsentDoesNotTouchOtherStudents(t *testing.T) {
	db := setupDB(t)
	rajin := uuid.New()
	absen := uuid.New()
	d := day(2026, 3, 2)

	if _, err := MarkAttendance(db, rajin, d, constants.AttendancePresent, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := MarkAttendance(db, absen, d, constants.AttendanceAbsent, nil); err != nil {
		t.Fatal(err)
	}

	if n := countEnthusiasm(t, db, rajin); n != 1 {
		t.Errorf("poin santri lain ikut terhapus: %d, mau 1", n)
	}
}

func TestPresentThenAbsentThenPresent(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	d := day(2026, 3, 2)

	if _, err := MarkAttendance(db, studentID, d, constants.AttendancePresent, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := MarkAttendance(db, studentID, d, constants.AttendanceAbsent, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := MarkAttendance(db, studentID, d, constants.AttendancePresent, nil); err != nil {
		t.Fatal(err)
	}

	var row attendancemodel.AttendanceModel
	if err := db.Where("attendance_student_id = ?", studentID).First(&row).Error; err != nil {
		t.Fatal(err)
	}
	if row.AttendanceStatus != constants.AttendancePresent {
		t.Errorf("status akhir = %q, mau present", row.AttendanceStatus)
	}
	if n := countEnthusiasm(t, db, studentID); n != 1 {
		t.Errorf("poin semangat = %d, mau 1", n)
	}
}
