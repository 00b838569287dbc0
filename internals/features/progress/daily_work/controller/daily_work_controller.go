// file: internals/features/progress/daily_work/controller/daily_work_controller.go
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

	"tahfidzku_backend/internals/features/progress/daily_work/dto"
	"tahfidzku_backend/internals/features/progress/daily_work/model"
	"tahfidzku_backend/internals/features/progress/daily_work/service"
	helper "tahfidzku_backend/internals/helpers"
)

type DailyWorkController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDailyWorkController(db *gorm.DB) *DailyWorkController {
	return &DailyWorkController{DB: db, Validator: validator.New()}
}

// POST /daily-work — upsert setoran satu santri satu tanggal
func (ctl *DailyWorkController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertDailyWorkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.StudentID)
	date, _ := time.Parse("2006-01-02", req.Date)

	var teacherID *uuid.UUID
	if id := helper.GetTeacherIDFromToken(c); id != uuid.Nil {
		teacherID = &id
	}

	row, err := service.UpsertDailyWork(ctl.DB, studentID, datatypes.Date(date), req.DailyWorkFields, req.Mode, teacherID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		log.Printf("[ERROR] upsert daily work: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setoran")
	}
	return helper.JsonOK(c, "Setoran tersimpan", row)
}

// POST /daily-work/batch — quick-entry satu roster.
// Validasi dijalankan untuk SEMUA baris dulu; ada error satu saja,
// seluruh batch dibatalkan sebelum ada yang ditulis.
func (ctl *DailyWorkController) BatchQuickEntry(c *fiber.Ctx) error {
	var req dto.BatchQuickEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var vErrs []dto.QuickEntryValidationError
	for _, row := range req.Entries {
		if service.IsEmpty(row.DailyWorkFields) {
			continue
		}
		if err := service.ValidateFields(row.DailyWorkFields); err != nil {
			name := row.StudentName
			if name == "" {
				name = row.StudentID
			}
			vErrs = append(vErrs, dto.QuickEntryValidationError{StudentName: name, Message: err.Error()})
		}
	}
	if len(vErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validasi gagal, tidak ada yang disimpan",
			"errors":  vErrs,
		})
	}

	var teacherID *uuid.UUID
	if id := helper.GetTeacherIDFromToken(c); id != uuid.Nil {
		teacherID = &id
	}

	// Penyimpanan diisolasi per santri: gagal satu, sisanya jalan terus.
	var result dto.BatchQuickEntryResult
	for _, row := range req.Entries {
		if service.IsEmpty(row.DailyWorkFields) {
			result.Skipped++
			continue
		}
		studentID, err := uuid.Parse(row.StudentID)
		if err != nil {
			result.Failed++
			continue
		}
		if _, err := service.UpsertDailyWork(ctl.DB, studentID, datatypes.Date(date), row.DailyWorkFields, req.Mode, teacherID); err != nil {
			log.Printf("[ERROR] quick-entry santri %s: %v", row.StudentID, err)
			result.Failed++
			continue
		}
		result.Saved++
	}

	return helper.JsonOK(c, "Quick-entry selesai diproses", result)
}

// GET /daily-work?date=&student_id=&circle_id=
func (ctl *DailyWorkController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.DailyWorkModel{})

	if s := strings.TrimSpace(c.Query("date")); s != "" {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
		}
		qry = qry.Where("daily_work_date = ?", s)
	}
	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		qry = qry.Where("daily_work_student_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("circle_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "circle_id tidak valid")
		}
		qry = qry.Where("daily_work_student_id IN (?)",
			ctl.DB.Table("students").Select("student_id").Where("student_circle_id = ?", id))
	}

	var rows []model.DailyWorkModel
	if err := qry.Order("daily_work_date ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data setoran")
	}
	return helper.JsonOK(c, "OK", rows)
}

// DELETE /daily-work/:id
func (ctl *DailyWorkController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Where("daily_work_id = ?", id).Delete(&model.DailyWorkModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus setoran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Setoran dihapus", fiber.Map{"daily_work_id": id})
}
