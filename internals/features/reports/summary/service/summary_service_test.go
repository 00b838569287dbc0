// file: internals/features/reports/summary/service/summary_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"tahfidzku_backend/internals/constants"
	studentmodel "tahfidzku_backend/internals/features/institute/students/model"
	attendancemodel "tahfidzku_backend/internals/features/progress/attendance/model"
	beginnermodel "tahfidzku_backend/internals/features/progress/beginner_recitations/model"
	dailymodel "tahfidzku_backend/internals/features/progress/daily_work/model"
	exammodel "tahfidzku_backend/internals/features/progress/exams/model"
	pointmodel "tahfidzku_backend/internals/features/progress/points/model"
)

func date(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func strptr(s string) *string { return &s }

func student(name string) studentmodel.StudentModel {
	return studentmodel.StudentModel{
		StudentID:    uuid.New(),
		StudentName:  name,
		StudentLevel: constants.LevelHafizh,
	}
}

func TestSummarizeEmptyRosterStudent(t *testing.T) {
	ahmad := student("أحمد")
	budi := student("Budi")

	out := Summarize(Input{
		Roster:  []studentmodel.StudentModel{ahmad, budi},
		Variant: VariantMonthly,
	})

	if len(out) != 2 {
		t.Fatalf("jumlah baris = %d, mau 2", len(out))
	}
	// urutan output = urutan roster
	if out[0].StudentName != "أحمد" || out[1].StudentName != "Budi" {
		t.Errorf("urutan output tidak mengikuti roster: %q, %q", out[0].StudentName, out[1].StudentName)
	}
	for _, row := range out {
		if row.TotalPages != 0 || row.Retakes != 0 || row.Absences != 0 ||
			row.ExamCount != 0 || row.PointsTotal != 0 {
			t.Errorf("santri tanpa data harus nol semua: %+v", row)
		}
		if row.LastPage != constants.LastPageNone {
			t.Errorf("LastPage = %q, mau %q", row.LastPage, constants.LastPageNone)
		}
		if row.Behavior != constants.BehaviorUnspecified {
			t.Errorf("Behavior = %q, mau %q", row.Behavior, constants.BehaviorUnspecified)
		}
	}
}

func TestSummarizeExcludesDiscontinued(t *testing.T) {
	aktif := student("Aktif")
	berhenti := student("Berhenti")

	out := Summarize(Input{
		Roster:      []studentmodel.StudentModel{aktif, berhenti},
		ExcludedIDs: map[uuid.UUID]bool{berhenti.StudentID: true},
		DailyWork: []dailymodel.DailyWorkModel{
			{
				DailyWorkStudentID:       berhenti.StudentID,
				DailyWorkDate:            date(2026, 3, 2),
				DailyWorkRecitationCount: 5,
				DailyWorkRecitationGrade: strptr(constants.GradeMumtaz),
			},
		},
		Variant: VariantMonthly,
	})

	if len(out) != 1 {
		t.Fatalf("jumlah baris = %d, mau 1", len(out))
	}
	if out[0].StudentID != aktif.StudentID {
		t.Errorf("santri berhenti ikut muncul di output")
	}
}

func TestSummarizeRedoRecitationMonthly(t *testing.T) {
	s := student("س")
	out := Summarize(Input{
		Roster: []studentmodel.StudentModel{s},
		DailyWork: []dailymodel.DailyWorkModel{
			{
				DailyWorkStudentID:       s.StudentID,
				DailyWorkDate:            date(2026, 3, 2),
				DailyWorkRecitationCount: 3,
				DailyWorkRecitationGrade: strptr(constants.GradeIadah),
			},
			{
				DailyWorkStudentID:       s.StudentID,
				DailyWorkDate:            date(2026, 3, 3),
				DailyWorkRecitationCount: 2,
				DailyWorkRecitationGrade: strptr(constants.GradeJayyid),
			},
		},
		Variant: VariantMonthly,
	})

	if out[0].TotalPages != 2 {
		t.Errorf("TotalPages = %d, mau 2 (halaman إعادة tidak boleh masuk)", out[0].TotalPages)
	}
	if out[0].Retakes != 1 {
		t.Errorf("Retakes = %d, mau 1", out[0].Retakes)
	}
}

func TestSummarizeWeeklyKeepsColumnsSeparate(t *testing.T) {
	s := student("س")
	out := Summarize(Input{
		Roster: []studentmodel.StudentModel{s},
		DailyWork: []dailymodel.DailyWorkModel{
			{
				DailyWorkStudentID:       s.StudentID,
				DailyWorkDate:            date(2026, 3, 2),
				DailyWorkRecitationCount: 2,
				DailyWorkRecitationGrade: strptr(constants.GradeMumtaz),
				DailyWorkReviewCount:     4,
				// muraja'ah إعادة TETAP dihitung pada rekap mingguan
				DailyWorkReviewGrade: strptr(constants.GradeIadah),
				DailyWorkHadithCount: 3,
			},
			{
				DailyWorkStudentID:       s.StudentID,
				DailyWorkDate:            date(2026, 3, 3),
				DailyWorkRecitationCount: 1,
				// hafalan إعادة: mingguan tidak menambah halaman DAN
				// tidak menambah ujian ulang
				DailyWorkRecitationGrade: strptr(constants.GradeIadah),
			},
		},
		Variant: VariantWeekly,
	})

	row := out[0]
	if row.RecitationPages != 2 {
		t.Errorf("RecitationPages = %d, mau 2", row.RecitationPages)
	}
	if row.ReviewPages != 4 {
		t.Errorf("ReviewPages = %d, mau 4 (mingguan tidak mengecualikan إعادة)", row.ReviewPages)
	}
	if row.HadithCount != 3 {
		t.Errorf("HadithCount = %d, mau 3", row.HadithCount)
	}
	if row.Retakes != 0 {
		t.Errorf("Retakes = %d, mau 0 pada varian mingguan", row.Retakes)
	}
	if row.TotalPages != 0 {
		t.Errorf("TotalPages = %d, harus 0 pada varian mingguan", row.TotalPages)
	}
}

func TestSummarizeMonthlyExcludesRedoReview(t *testing.T) {
	s := student("س")
	out := Summarize(Input{
		Roster: []studentmodel.StudentModel{s},
		DailyWork: []dailymodel.DailyWorkModel{
			{
				DailyWorkStudentID:   s.StudentID,
				DailyWorkDate:        date(2026, 3, 2),
				DailyWorkReviewCount: 4,
				DailyWorkReviewGrade: strptr(constants.GradeIadah),
				DailyWorkHadithCount: 2,
			},
			{
				DailyWorkStudentID:   s.StudentID,
				DailyWorkDate:        date(2026, 3, 3),
				DailyWorkReviewCount: 3,
				DailyWorkReviewGrade: strptr(constants.GradeJayyidJiddan),
			},
		},
		Variant: VariantMonthly,
	})

	if out[0].TotalPages != 3 {
		t.Errorf("TotalPages = %d, mau 3 (muraja'ah إعادة dikecualikan)", out[0].TotalPages)
	}
	if out[0].HadithCount != 0 {
		t.Errorf("HadithCount = %d, hadits hanya ikut rekap mingguan", out[0].HadithCount)
	}
}

func TestSummarizeBeginnerDistinctPages(t *testing.T) {
	s := student("س")
	rows := []beginnermodel.BeginnerRecitationModel{
		{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 1), BeginnerRecitationPage: 7, BeginnerRecitationGrade: constants.GradeJayyid},
		{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 2), BeginnerRecitationPage: 7, BeginnerRecitationGrade: constants.GradeMumtaz},
		{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 3), BeginnerRecitationPage: 8, BeginnerRecitationGrade: constants.GradeMaqbul},
		{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 4), BeginnerRecitationPage: 9, BeginnerRecitationGrade: constants.GradeIadah},
	}

	out := Summarize(Input{
		Roster:              []studentmodel.StudentModel{s},
		BeginnerRecitations: rows,
		Variant:             VariantMonthly,
	})

	// halaman 7 dua kali → dihitung sekali; halaman 9 إعادة → ujian ulang
	if out[0].TotalPages != 2 {
		t.Errorf("TotalPages = %d, mau 2 (himpunan halaman unik)", out[0].TotalPages)
	}
	if out[0].Retakes != 1 {
		t.Errorf("Retakes = %d, mau 1", out[0].Retakes)
	}
}

func TestSummarizeAbsencesExamsPoints(t *testing.T) {
	s := student("س")
	out := Summarize(Input{
		Roster: []studentmodel.StudentModel{s},
		Absences: []attendancemodel.AttendanceModel{
			{AttendanceStudentID: s.StudentID, AttendanceDate: date(2026, 3, 2), AttendanceStatus: constants.AttendanceAbsent},
			{AttendanceStudentID: s.StudentID, AttendanceDate: date(2026, 3, 3), AttendanceStatus: constants.AttendanceAbsent},
		},
		Exams: []exammodel.ExamEntryModel{
			{ExamEntryStudentID: s.StudentID, ExamEntryDate: date(2026, 3, 5), ExamEntryAttempt: 1},
			{ExamEntryStudentID: s.StudentID, ExamEntryDate: date(2026, 3, 12), ExamEntryAttempt: 2},
		},
		GeneralPoints: []pointmodel.PointEntryModel{
			{PointEntryStudentID: s.StudentID, PointEntryDate: date(2026, 3, 2), PointEntryType: constants.PointTypeGeneral, PointEntryPoints: 10},
			{PointEntryStudentID: s.StudentID, PointEntryDate: date(2026, 3, 3), PointEntryType: constants.PointTypeGeneral, PointEntryPoints: -3},
		},
		Variant: VariantMonthly,
	})

	row := out[0]
	if row.Absences != 2 {
		t.Errorf("Absences = %d, mau 2", row.Absences)
	}
	if row.ExamCount != 2 {
		t.Errorf("ExamCount = %d, mau 2", row.ExamCount)
	}
	if row.Retakes != 1 {
		t.Errorf("Retakes = %d, mau 1 (attempt > 1)", row.Retakes)
	}
	if row.PointsTotal != 7 {
		t.Errorf("PointsTotal = %d, mau 7 (jumlah bertanda)", row.PointsTotal)
	}
}

func TestSummarizeRetakesAccumulateAcrossSources(t *testing.T) {
	s := student("س")
	out := Summarize(Input{
		Roster: []studentmodel.StudentModel{s},
		DailyWork: []dailymodel.DailyWorkModel{
			{
				DailyWorkStudentID:       s.StudentID,
				DailyWorkDate:            date(2026, 3, 2),
				DailyWorkRecitationCount: 1,
				DailyWorkRecitationGrade: strptr(constants.GradeIadah),
			},
		},
		BeginnerRecitations: []beginnermodel.BeginnerRecitationModel{
			{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 3), BeginnerRecitationPage: 5, BeginnerRecitationGrade: constants.GradeIadah},
			{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 4), BeginnerRecitationPage: 6, BeginnerRecitationGrade: constants.GradeIadah},
		},
		Exams: []exammodel.ExamEntryModel{
			{ExamEntryStudentID: s.StudentID, ExamEntryDate: date(2026, 3, 12), ExamEntryAttempt: 2},
			{ExamEntryStudentID: s.StudentID, ExamEntryDate: date(2026, 3, 19), ExamEntryAttempt: 3},
		},
		Variant: VariantMonthly,
	})

	// 1 (hafalan إعادة) + 2 (tamhidi إعادة) + 2 (ujian attempt > 1):
	// ketiga sumber saling menjumlah, tidak saling menimpa
	if out[0].Retakes != 5 {
		t.Errorf("Retakes = %d, mau 5", out[0].Retakes)
	}
	if out[0].TotalPages != 0 {
		t.Errorf("TotalPages = %d, mau 0 (semua setoran إعادة)", out[0].TotalPages)
	}
}

func TestSummarizeBehaviorLabels(t *testing.T) {
	tests := []struct {
		name   string
		grades []string
		want   string
	}{
		{"tiga kali mumtaz", []string{constants.GradeMumtaz, constants.GradeMumtaz, constants.GradeMumtaz}, constants.GradeMumtaz},
		{"rata-rata 2.5 pas di ambang", []string{constants.GradeJayyidJiddan, constants.GradeJayyid}, constants.GradeJayyidJiddan},
		{"tanpa data", nil, constants.BehaviorUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := student("س")
			var daily []dailymodel.DailyWorkModel
			for i, g := range tt.grades {
				daily = append(daily, dailymodel.DailyWorkModel{
					DailyWorkStudentID:     s.StudentID,
					DailyWorkDate:          date(2026, 3, i+1),
					DailyWorkBehaviorGrade: strptr(g),
				})
			}
			out := Summarize(Input{
				Roster:    []studentmodel.StudentModel{s},
				DailyWork: daily,
				Variant:   VariantMonthly,
			})
			if out[0].Behavior != tt.want {
				t.Errorf("Behavior = %q, mau %q", out[0].Behavior, tt.want)
			}
		})
	}
}

func TestSummarizeLastPage(t *testing.T) {
	t.Run("angka terakhir daftar halaman baris terakhir", func(t *testing.T) {
		s := student("س")
		out := Summarize(Input{
			Roster: []studentmodel.StudentModel{s},
			DailyWork: []dailymodel.DailyWorkModel{
				// sengaja tidak urut tanggal: agregator yang mengurutkan
				{
					DailyWorkStudentID:       s.StudentID,
					DailyWorkDate:            date(2026, 3, 10),
					DailyWorkRecitationCount: 2,
					DailyWorkRecitationPages: pq.Int64Array{44, 45},
					DailyWorkRecitationGrade: strptr(constants.GradeMumtaz),
				},
				{
					DailyWorkStudentID:       s.StudentID,
					DailyWorkDate:            date(2026, 3, 3),
					DailyWorkRecitationCount: 1,
					DailyWorkRecitationPages: pq.Int64Array{12},
					DailyWorkRecitationGrade: strptr(constants.GradeJayyid),
				},
			},
			Variant: VariantMonthly,
		})
		if out[0].LastPage != "45" {
			t.Errorf("LastPage = %q, mau %q", out[0].LastPage, "45")
		}
	})

	t.Run("hanya jumlah halaman tanpa daftar", func(t *testing.T) {
		s := student("س")
		out := Summarize(Input{
			Roster: []studentmodel.StudentModel{s},
			DailyWork: []dailymodel.DailyWorkModel{
				{
					DailyWorkStudentID:       s.StudentID,
					DailyWorkDate:            date(2026, 3, 3),
					DailyWorkRecitationCount: 3,
					DailyWorkRecitationGrade: strptr(constants.GradeJayyid),
				},
			},
			Variant: VariantMonthly,
		})
		if out[0].LastPage != "3 صفحة" {
			t.Errorf("LastPage = %q, mau %q", out[0].LastPage, "3 صفحة")
		}
	})

	t.Run("setoran harian menang atas tamhidi yang lebih baru", func(t *testing.T) {
		s := student("س")
		out := Summarize(Input{
			Roster: []studentmodel.StudentModel{s},
			DailyWork: []dailymodel.DailyWorkModel{
				{
					DailyWorkStudentID:       s.StudentID,
					DailyWorkDate:            date(2026, 3, 3),
					DailyWorkRecitationCount: 1,
					DailyWorkRecitationPages: pq.Int64Array{20},
					DailyWorkRecitationGrade: strptr(constants.GradeMumtaz),
				},
			},
			BeginnerRecitations: []beginnermodel.BeginnerRecitationModel{
				{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 10), BeginnerRecitationPage: 4, BeginnerRecitationGrade: constants.GradeJayyid},
			},
			Variant: VariantMonthly,
		})
		if out[0].LastPage != "20" {
			t.Errorf("LastPage = %q, mau %q (tamhidi hanya fallback)", out[0].LastPage, "20")
		}
	})

	t.Run("fallback ke setoran tamhidi terakhir", func(t *testing.T) {
		s := student("س")
		out := Summarize(Input{
			Roster: []studentmodel.StudentModel{s},
			BeginnerRecitations: []beginnermodel.BeginnerRecitationModel{
				{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 2), BeginnerRecitationPage: 5, BeginnerRecitationGrade: constants.GradeJayyid},
				{BeginnerRecitationStudentID: s.StudentID, BeginnerRecitationDate: date(2026, 3, 9), BeginnerRecitationPage: 6, BeginnerRecitationGrade: constants.GradeMumtaz},
			},
			Variant: VariantMonthly,
		})
		if out[0].LastPage != "صفحة 6" {
			t.Errorf("LastPage = %q, mau %q", out[0].LastPage, "صفحة 6")
		}
	})
}
