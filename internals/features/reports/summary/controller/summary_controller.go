// file: internals/features/reports/summary/controller/summary_controller.go
package controller

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	studentservice "tahfidzku_backend/internals/features/institute/students/service"
	attendancemodel "tahfidzku_backend/internals/features/progress/attendance/model"
	beginnermodel "tahfidzku_backend/internals/features/progress/beginner_recitations/model"
	dailymodel "tahfidzku_backend/internals/features/progress/daily_work/model"
	exammodel "tahfidzku_backend/internals/features/progress/exams/model"
	pointmodel "tahfidzku_backend/internals/features/progress/points/model"
	"tahfidzku_backend/internals/features/reports/summary/service"
	helper "tahfidzku_backend/internals/helpers"
)

type SummaryController struct {
	DB *gorm.DB
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{DB: db}
}

// GET /reports/weekly?date=&circle_id= — 7 hari terakhir berakhir di date
func (ctl *SummaryController) Weekly(c *fiber.Ctx) error {
	end, err := queryDate(c, "date", time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}
	start := end.AddDate(0, 0, -6)
	return ctl.respondSummary(c, start, end, service.VariantWeekly)
}

// GET /reports/monthly?month=&year=&circle_id= — satu bulan kalender
func (ctl *SummaryController) Monthly(c *fiber.Ctx) error {
	month, year, err := queryMonthYear(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return ctl.respondSummary(c, start, end, service.VariantMonthly)
}

// GET /reports/quarterly?month=&year=&circle_id= — 4 bulan berurutan
// dimulai dari month/year.
func (ctl *SummaryController) Quarterly(c *fiber.Ctx) error {
	month, year, err := queryMonthYear(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 4, -1)
	return ctl.respondSummary(c, start, end, service.VariantMonthly)
}

func (ctl *SummaryController) respondSummary(c *fiber.Ctx, start, end time.Time, variant service.Variant) error {
	var circleID *uuid.UUID
	if s := strings.TrimSpace(c.Query("circle_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "circle_id tidak valid")
		}
		circleID = &id
	}

	roster, err := studentservice.GetActiveRoster(ctl.DB, circleID)
	if err != nil {
		log.Printf("[ERROR] ambil roster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil roster")
	}

	ids := make([]uuid.UUID, 0, len(roster))
	for _, s := range roster {
		ids = append(ids, s.StudentID)
	}

	src, err := ctl.fetchSources(c, ids, start, end)
	if err != nil {
		// Satu sumber gagal = seluruh rekap batal, tanpa hasil parsial.
		log.Printf("[ERROR] ambil sumber rekap: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rekap")
	}

	src.Roster = roster
	src.Variant = variant
	rows := service.Summarize(*src)

	return helper.JsonOK(c, "OK", fiber.Map{
		"from":    start.Format("2006-01-02"),
		"to":      end.Format("2006-01-02"),
		"variant": string(variant),
		"rows":    rows,
	})
}

// fetchSources menarik lima koleksi sumber secara paralel. Error pertama
// membatalkan semuanya.
func (ctl *SummaryController) fetchSources(c *fiber.Ctx, ids []uuid.UUID, start, end time.Time) (*service.Input, error) {
	from := start.Format("2006-01-02")
	to := end.Format("2006-01-02")

	in := &service.Input{ExcludedIDs: map[uuid.UUID]bool{}}

	g, ctx := errgroup.WithContext(c.Context())
	db := ctl.DB.WithContext(ctx)

	g.Go(func() error {
		return db.
			Where("daily_work_student_id IN ? AND daily_work_date BETWEEN ? AND ?", ids, from, to).
			Find(&in.DailyWork).Error
	})
	g.Go(func() error {
		return db.
			Where("beginner_recitation_student_id IN ? AND beginner_recitation_date BETWEEN ? AND ?", ids, from, to).
			Find(&in.BeginnerRecitations).Error
	})
	g.Go(func() error {
		return db.
			Where("attendance_student_id IN ? AND attendance_date BETWEEN ? AND ? AND attendance_status = ?",
				ids, from, to, constants.AttendanceAbsent).
			Find(&in.Absences).Error
	})
	g.Go(func() error {
		return db.
			Where("exam_entry_student_id IN ? AND exam_entry_date BETWEEN ? AND ?", ids, from, to).
			Find(&in.Exams).Error
	})
	g.Go(func() error {
		return db.
			Where("point_entry_student_id IN ? AND point_entry_date BETWEEN ? AND ? AND point_entry_type = ?",
				ids, from, to, constants.PointTypeGeneral).
			Find(&in.GeneralPoints).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// GET /students/:id/report?date= — laporan harian publik satu santri.
// Jumat/Sabtu libur: tanggal digeser mundur ke Kamis terdekat.
func (ctl *SummaryController) DailyReport(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	date, err := queryDate(c, "date", time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}
	date = shiftToClassDay(date)
	day := date.Format("2006-01-02")

	var (
		dailyWork   []dailymodel.DailyWorkModel
		recitations []beginnermodel.BeginnerRecitationModel
		attendance  []attendancemodel.AttendanceModel
		points      []pointmodel.PointEntryModel
		exams       []exammodel.ExamEntryModel
	)

	g, ctx := errgroup.WithContext(c.Context())
	db := ctl.DB.WithContext(ctx)

	g.Go(func() error {
		return db.Where("daily_work_student_id = ? AND daily_work_date = ?", studentID, day).
			Find(&dailyWork).Error
	})
	g.Go(func() error {
		return db.Where("beginner_recitation_student_id = ? AND beginner_recitation_date = ?", studentID, day).
			Find(&recitations).Error
	})
	g.Go(func() error {
		return db.Where("attendance_student_id = ? AND attendance_date = ?", studentID, day).
			Find(&attendance).Error
	})
	g.Go(func() error {
		return db.Where("point_entry_student_id = ? AND point_entry_date = ?", studentID, day).
			Find(&points).Error
	})
	g.Go(func() error {
		return db.Where("exam_entry_student_id = ? AND exam_entry_date = ?", studentID, day).
			Find(&exams).Error
	})

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] laporan harian %s: %v", studentID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan harian")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"date":                 day,
		"daily_work":           dailyWork,
		"beginner_recitations": recitations,
		"attendance":           attendance,
		"points":               points,
		"exams":                exams,
	})
}

// shiftToClassDay menggeser Jumat/Sabtu ke Kamis sebelumnya.
func shiftToClassDay(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Friday:
		return d.AddDate(0, 0, -1)
	case time.Saturday:
		return d.AddDate(0, 0, -2)
	default:
		return d
	}
}

func queryDate(c *fiber.Ctx, key string, fallback time.Time) (time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return fallback.Truncate(24 * time.Hour), nil
	}
	return time.Parse("2006-01-02", s)
}

func queryMonthYear(c *fiber.Ctx) (int, int, error) {
	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month tidak valid")
	}
	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 2000 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "year tidak valid")
	}
	return month, year, nil
}
