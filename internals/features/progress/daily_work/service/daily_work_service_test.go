// file: internals/features/progress/daily_work/service/daily_work_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/daily_work/dto"
	"tahfidzku_backend/internals/features/progress/daily_work/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.DailyWorkModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func strptr(s string) *string { return &s }

func TestValidateFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  dto.DailyWorkFields
		wantErr bool
	}{
		{"kosong sah", dto.DailyWorkFields{}, false},
		{"halaman + nilai sah", dto.DailyWorkFields{RecitationPages: "5-7", RecitationGrade: strptr(constants.GradeMumtaz)}, false},
		{"halaman tanpa nilai", dto.DailyWorkFields{RecitationPages: "5-7"}, true},
		{"muraja'ah tanpa nilai", dto.DailyWorkFields{ReviewPages: "12"}, true},
		{"karakter aneh", dto.DailyWorkFields{RecitationPages: "5a", RecitationGrade: strptr(constants.GradeMumtaz)}, true},
		{"nilai tidak dikenal", dto.DailyWorkFields{RecitationPages: "5", RecitationGrade: strptr("bagus")}, true},
		{"nilai adab tidak dikenal", dto.DailyWorkFields{BehaviorGrade: strptr("ok")}, true},
		// range terbalik di-drop oleh expander → dianggap tidak mengisi halaman
		{"range terbalik tanpa nilai", dto.DailyWorkFields{RecitationPages: "10-5"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFields(tt.fields)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFields() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("error validasi harus membungkus ErrValidation: %v", err)
			}
		})
	}
}

func TestUpsertCreatesWhenAbsent(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()

	row, err := UpsertDailyWork(db, studentID, day(2026, 3, 2), dto.DailyWorkFields{
		RecitationCount: 2,
		RecitationPages: "40-41",
		RecitationGrade: strptr(constants.GradeMumtaz),
		HadithCount:     1,
	}, ModeMerge, nil)
	if err != nil {
		t.Fatal(err)
	}

	if row.DailyWorkRecitationCount != 2 {
		t.Errorf("RecitationCount = %d, mau 2", row.DailyWorkRecitationCount)
	}
	if len(row.DailyWorkRecitationPages) != 2 || row.DailyWorkRecitationPages[1] != 41 {
		t.Errorf("RecitationPages = %v, mau [40 41]", row.DailyWorkRecitationPages)
	}
}

func TestUpsertMerge(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	d := day(2026, 3, 2)

	if _, err := UpsertDailyWork(db, studentID, d, dto.DailyWorkFields{
		RecitationCount: 2,
		RecitationPages: "40,41",
		RecitationGrade: strptr(constants.GradeJayyid),
		ReviewCount:     3,
		BonusPoints:     5,
	}, ModeMerge, nil); err != nil {
		t.Fatal(err)
	}

	// setoran kedua hari yang sama: jumlah bertambah, halaman digabung
	// tanpa duplikat, nilai baru menggantikan
	row, err := UpsertDailyWork(db, studentID, d, dto.DailyWorkFields{
		RecitationCount: 1,
		RecitationPages: "41,42",
		RecitationGrade: strptr(constants.GradeMumtaz),
		ReviewCount:     1,
		BonusPoints:     2,
	}, ModeMerge, nil)
	if err != nil {
		t.Fatal(err)
	}

	if row.DailyWorkRecitationCount != 3 {
		t.Errorf("RecitationCount = %d, mau 3", row.DailyWorkRecitationCount)
	}
	want := []int64{40, 41, 42}
	if len(row.DailyWorkRecitationPages) != len(want) {
		t.Fatalf("RecitationPages = %v, mau %v", row.DailyWorkRecitationPages, want)
	}
	for i, p := range want {
		if row.DailyWorkRecitationPages[i] != p {
			t.Errorf("RecitationPages[%d] = %d, mau %d", i, row.DailyWorkRecitationPages[i], p)
		}
	}
	if row.DailyWorkRecitationGrade == nil || *row.DailyWorkRecitationGrade != constants.GradeMumtaz {
		t.Errorf("RecitationGrade = %v, mau nilai baru", row.DailyWorkRecitationGrade)
	}
	if row.DailyWorkReviewCount != 4 {
		t.Errorf("ReviewCount = %d, mau 4", row.DailyWorkReviewCount)
	}
	if row.DailyWorkBonusPoints != 7 {
		t.Errorf("BonusPoints = %d, mau 7", row.DailyWorkBonusPoints)
	}

	// tetap satu baris per (santri, tanggal)
	var n int64
	if err := db.Model(&model.DailyWorkModel{}).
		Where("daily_work_student_id = ?", studentID).
		Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("jumlah baris = %d, mau 1", n)
	}
}

func TestUpsertMergeKeepsOldGradeWhenNewAbsent(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	d := day(2026, 3, 2)

	if _, err := UpsertDailyWork(db, studentID, d, dto.DailyWorkFields{
		RecitationCount: 1,
		RecitationPages: "40",
		RecitationGrade: strptr(constants.GradeJayyid),
	}, ModeMerge, nil); err != nil {
		t.Fatal(err)
	}

	row, err := UpsertDailyWork(db, studentID, d, dto.DailyWorkFields{
		HadithCount: 2,
		HadithGrade: strptr(constants.GradeMumtaz),
	}, ModeMerge, nil)
	if err != nil {
		t.Fatal(err)
	}
	if row.DailyWorkRecitationGrade == nil || *row.DailyWorkRecitationGrade != constants.GradeJayyid {
		t.Errorf("nilai lama hilang saat merge tanpa nilai baru: %v", row.DailyWorkRecitationGrade)
	}
}

func TestUpsertReplace(t *testing.T) {
	db := setupDB(t)
	studentID := uuid.New()
	d := day(2026, 3, 2)

	if _, err := UpsertDailyWork(db, studentID, d, dto.DailyWorkFields{
		RecitationCount: 2,
		RecitationPages: "40,41",
		RecitationGrade: strptr(constants.GradeJayyid),
		ReviewCount:     3,
		BonusPoints:     5,
	}, ModeMerge, nil); err != nil {
		t.Fatal(err)
	}

	row, err := UpsertDailyWork(db, studentID, d, dto.DailyWorkFields{
		RecitationCount: 1,
		RecitationPages: "50",
		RecitationGrade: strptr(constants.GradeMumtaz),
	}, ModeReplace, nil)
	if err != nil {
		t.Fatal(err)
	}

	if row.DailyWorkRecitationCount != 1 {
		t.Errorf("RecitationCount = %d, mau 1 (replace, bukan merge)", row.DailyWorkRecitationCount)
	}
	if len(row.DailyWorkRecitationPages) != 1 || row.DailyWorkRecitationPages[0] != 50 {
		t.Errorf("RecitationPages = %v, mau [50]", row.DailyWorkRecitationPages)
	}
	if row.DailyWorkReviewCount != 0 || row.DailyWorkBonusPoints != 0 {
		t.Errorf("field lama harus ikut tertimpa: review=%d bonus=%d",
			row.DailyWorkReviewCount, row.DailyWorkBonusPoints)
	}
}

func TestUpsertRejectsInvalidInput(t *testing.T) {
	db := setupDB(t)
	_, err := UpsertDailyWork(db, uuid.New(), day(2026, 3, 2), dto.DailyWorkFields{
		RecitationPages: "40",
	}, ModeMerge, nil)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("err = %v, mau ErrValidation", err)
	}
}
