// file: internals/features/reports/summary/service/summary_service.go
//
// Reduksi murni: tidak menyentuh DB sama sekali. Controller yang
// mengambil lima koleksi sumber; di sini hanya menghitung.
package service

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"tahfidzku_backend/internals/constants"
	studentmodel "tahfidzku_backend/internals/features/institute/students/model"
	attendancemodel "tahfidzku_backend/internals/features/progress/attendance/model"
	beginnermodel "tahfidzku_backend/internals/features/progress/beginner_recitations/model"
	dailymodel "tahfidzku_backend/internals/features/progress/daily_work/model"
	exammodel "tahfidzku_backend/internals/features/progress/exams/model"
	pointmodel "tahfidzku_backend/internals/features/progress/points/model"
)

type Variant string

const (
	// Rekap mingguan: halaman hafalan & muraja'ah dipisah, muraja'ah
	// dijumlah tanpa syarat, jumlah hadits ikut.
	VariantWeekly Variant = "weekly"
	// Rekap bulanan/triwulan: satu angka total halaman; setoran bernilai
	// إعادة masuk hitungan ujian ulang, bukan halaman.
	VariantMonthly Variant = "monthly"
)

type Input struct {
	// Roster sudah terurut (biasanya alfabetis); urutan output mengikuti.
	Roster []studentmodel.StudentModel
	// Santri berhenti: dibuang SEBELUM reduksi, bukan disembunyikan.
	ExcludedIDs map[uuid.UUID]bool

	DailyWork           []dailymodel.DailyWorkModel
	BeginnerRecitations []beginnermodel.BeginnerRecitationModel
	// Sudah difilter status = absent oleh pengambil data.
	Absences []attendancemodel.AttendanceModel
	Exams    []exammodel.ExamEntryModel
	// Sudah difilter point_type = general.
	GeneralPoints []pointmodel.PointEntryModel

	Variant Variant
}

type StudentSummary struct {
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentLevel string    `json:"student_level"`

	// Terisi pada varian mingguan
	RecitationPages int `json:"recitation_pages"`
	ReviewPages     int `json:"review_pages"`
	HadithCount     int `json:"hadith_count"`

	// Terisi pada varian bulanan/triwulan
	TotalPages int `json:"total_pages"`

	Retakes     int    `json:"retakes"`
	Absences    int    `json:"absences"`
	ExamCount   int    `json:"exam_count"`
	PointsTotal int64  `json:"points_total"`
	Behavior    string `json:"behavior"`
	LastPage    string `json:"last_page"`
}

type accumulator struct {
	summary StudentSummary

	behaviorSum   int
	behaviorCount int
	beginnerPages map[int]bool
}

// Summarize mereduksi lima koleksi sumber menjadi satu baris rekap per
// santri roster, urut sesuai roster. Santri tanpa data tetap muncul
// dengan semua angka nol.
func Summarize(in Input) []StudentSummary {
	accs := make(map[uuid.UUID]*accumulator, len(in.Roster))
	var order []uuid.UUID

	for _, s := range in.Roster {
		if in.ExcludedIDs[s.StudentID] {
			continue
		}
		accs[s.StudentID] = &accumulator{
			summary: StudentSummary{
				StudentID:    s.StudentID,
				StudentName:  s.StudentName,
				StudentLevel: s.StudentLevel,
				Behavior:     constants.BehaviorUnspecified,
				LastPage:     constants.LastPageNone,
			},
			beginnerPages: make(map[int]bool),
		}
		order = append(order, s.StudentID)
	}

	monthly := in.Variant == VariantMonthly

	// -- setoran harian
	for _, dw := range in.DailyWork {
		acc, ok := accs[dw.DailyWorkStudentID]
		if !ok {
			continue
		}
		redoRecitation := dw.DailyWorkRecitationGrade != nil && *dw.DailyWorkRecitationGrade == constants.GradeIadah
		if redoRecitation {
			if monthly {
				acc.summary.Retakes++
			}
		} else {
			addPages(&acc.summary, dw.DailyWorkRecitationCount, monthly, false)
		}

		redoReview := dw.DailyWorkReviewGrade != nil && *dw.DailyWorkReviewGrade == constants.GradeIadah
		if !monthly || !redoReview {
			addPages(&acc.summary, dw.DailyWorkReviewCount, monthly, true)
		}

		if !monthly {
			acc.summary.HadithCount += dw.DailyWorkHadithCount
		}

		if dw.DailyWorkBehaviorGrade != nil {
			if v := constants.BehaviorGradeValues[*dw.DailyWorkBehaviorGrade]; v != 0 {
				acc.behaviorSum += v
				acc.behaviorCount++
			}
		}
	}

	// -- setoran tamhidi: halaman dihitung sebagai HIMPUNAN, bukan baris.
	// Halaman yang sama diulang berkali-kali dalam satu periode tetap
	// dihitung satu.
	for _, br := range in.BeginnerRecitations {
		acc, ok := accs[br.BeginnerRecitationStudentID]
		if !ok {
			continue
		}
		if br.BeginnerRecitationGrade == constants.GradeIadah {
			acc.summary.Retakes++
			continue
		}
		acc.beginnerPages[br.BeginnerRecitationPage] = true
	}
	for _, id := range order {
		acc := accs[id]
		addPages(&acc.summary, len(acc.beginnerPages), monthly, false)
	}

	// -- absensi (sudah terfilter absent)
	for _, a := range in.Absences {
		if acc, ok := accs[a.AttendanceStudentID]; ok {
			acc.summary.Absences++
		}
	}

	// -- ujian: attempt > 1 menambah ujian ulang, akumulatif dengan
	// hitungan إعادة di atas.
	for _, ex := range in.Exams {
		acc, ok := accs[ex.ExamEntryStudentID]
		if !ok {
			continue
		}
		acc.summary.ExamCount++
		if ex.ExamEntryAttempt > 1 {
			acc.summary.Retakes++
		}
	}

	// -- poin umum: jumlah bertanda
	for _, p := range in.GeneralPoints {
		if acc, ok := accs[p.PointEntryStudentID]; ok {
			acc.summary.PointsTotal += int64(p.PointEntryPoints)
		}
	}

	deriveLastPages(accs, in.DailyWork, in.BeginnerRecitations)

	out := make([]StudentSummary, 0, len(order))
	for _, id := range order {
		acc := accs[id]
		if acc.behaviorCount > 0 {
			avg := float64(acc.behaviorSum) / float64(acc.behaviorCount)
			acc.summary.Behavior = constants.BehaviorLabelFromAverage(avg)
		}
		out = append(out, acc.summary)
	}
	return out
}

func addPages(s *StudentSummary, n int, monthly, review bool) {
	if n == 0 {
		return
	}
	if monthly {
		s.TotalPages += n
		return
	}
	if review {
		s.ReviewPages += n
	} else {
		s.RecitationPages += n
	}
}

// deriveLastPages mencari label "sampai mana" per santri: baris setoran
// harian terakhir (kronologis) yang punya daftar halaman → angka terakhir
// daftar itu; hanya punya jumlah → bentuk "N صفحة"; tidak ada sama
// sekali → halaman setoran tamhidi terakhir, bentuk "صفحة N"; kalau
// tetap kosong, label tetap "لا يوجد".
func deriveLastPages(accs map[uuid.UUID]*accumulator, daily []dailymodel.DailyWorkModel, beginner []beginnermodel.BeginnerRecitationModel) {
	sortedDaily := make([]dailymodel.DailyWorkModel, len(daily))
	copy(sortedDaily, daily)
	sort.SliceStable(sortedDaily, func(i, j int) bool {
		return dateBefore(sortedDaily[i].DailyWorkDate, sortedDaily[j].DailyWorkDate)
	})

	for _, dw := range sortedDaily {
		acc, ok := accs[dw.DailyWorkStudentID]
		if !ok {
			continue
		}
		if n := len(dw.DailyWorkRecitationPages); n > 0 {
			acc.summary.LastPage = strconv.FormatInt(dw.DailyWorkRecitationPages[n-1], 10)
		} else if dw.DailyWorkRecitationCount > 0 {
			acc.summary.LastPage = fmt.Sprintf("%d صفحة", dw.DailyWorkRecitationCount)
		}
	}

	sortedBeginner := make([]beginnermodel.BeginnerRecitationModel, len(beginner))
	copy(sortedBeginner, beginner)
	sort.SliceStable(sortedBeginner, func(i, j int) bool {
		return dateBefore(sortedBeginner[i].BeginnerRecitationDate, sortedBeginner[j].BeginnerRecitationDate)
	})

	// Dibaca dari belakang: baris TERAKHIR yang harus jadi label, dan
	// hanya untuk santri yang belum dapat label dari setoran harian.
	for i := len(sortedBeginner) - 1; i >= 0; i-- {
		br := sortedBeginner[i]
		acc, ok := accs[br.BeginnerRecitationStudentID]
		if !ok {
			continue
		}
		if acc.summary.LastPage == constants.LastPageNone {
			acc.summary.LastPage = fmt.Sprintf("صفحة %d", br.BeginnerRecitationPage)
		}
	}
}

func dateBefore(a, b datatypes.Date) bool {
	return time.Time(a).Before(time.Time(b))
}
