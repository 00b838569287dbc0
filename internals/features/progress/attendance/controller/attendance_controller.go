// file: internals/features/progress/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/attendance/dto"
	"tahfidzku_backend/internals/features/progress/attendance/model"
	"tahfidzku_backend/internals/features/progress/attendance/service"
	helper "tahfidzku_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

// POST /attendance — tandai satu santri
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}

	var teacherID *uuid.UUID
	if id := helper.GetTeacherIDFromToken(c); id != uuid.Nil {
		teacherID = &id
	}

	row, err := service.MarkAttendance(ctl.DB, req.StudentID, datatypes.Date(date), req.Status, teacherID)
	if errors.Is(err, service.ErrInvalidStatus) {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		log.Printf("[ERROR] mark attendance: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.JsonOK(c, "Kehadiran tersimpan", row)
}

// POST /attendance/batch — absensi satu layar roster sekaligus.
// Per santri diisolasi: gagal satu tidak membatalkan sisanya.
func (ctl *AttendanceController) BatchMark(c *fiber.Ctx) error {
	var req dto.BatchMarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}

	var teacherID *uuid.UUID
	if id := helper.GetTeacherIDFromToken(c); id != uuid.Nil {
		teacherID = &id
	}

	var result dto.BatchMarkAttendanceResult
	for _, entry := range req.Entries {
		_, err := service.MarkAttendance(ctl.DB, entry.StudentID, datatypes.Date(date), entry.Status, teacherID)
		if err != nil {
			log.Printf("[ERROR] batch attendance santri %s: %v", entry.StudentID, err)
			result.Failed++
			continue
		}
		result.Saved++
	}

	return helper.JsonOK(c, "Absensi selesai diproses", result)
}

// GET /attendance?date=&circle_id=
func (ctl *AttendanceController) ListByDate(c *fiber.Ctx) error {
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter date wajib diisi")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}

	qry := ctl.DB.Model(&model.AttendanceModel{}).Where("attendance_date = ?", dateStr)

	if s := strings.TrimSpace(c.Query("circle_id")); s != "" {
		circleID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "circle_id tidak valid")
		}
		qry = qry.Where("attendance_student_id IN (?)",
			ctl.DB.Table("students").Select("student_id").Where("student_circle_id = ?", circleID))
	}

	var rows []model.AttendanceModel
	if err := qry.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}
	return helper.JsonOK(c, "OK", rows)
}
