// file: internals/features/progress/exams/controller/exam_entry_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/exams/dto"
	"tahfidzku_backend/internals/features/progress/exams/model"
	helper "tahfidzku_backend/internals/helpers"
)

type ExamEntryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExamEntryController(db *gorm.DB) *ExamEntryController {
	return &ExamEntryController{DB: db, Validator: validator.New()}
}

// POST /exams
func (ctl *ExamEntryController) Create(c *fiber.Ctx) error {
	var req dto.CreateExamEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.StudentID)
	date, _ := time.Parse("2006-01-02", req.Date)
	attempt := req.Attempt
	if attempt == 0 {
		attempt = 1
	}

	row := model.ExamEntryModel{
		ExamEntryStudentID:         studentID,
		ExamEntryDate:              datatypes.Date(date),
		ExamEntryAttempt:           attempt,
		ExamEntryStage:             req.Stage,
		ExamEntryMemorizationScore: req.MemorizationScore,
		ExamEntryTajwidScore:       req.TajwidScore,
		ExamEntryFluencyScore:      req.FluencyScore,
		ExamEntryGrade:             req.Grade,
		ExamEntryNotes:             req.Notes,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create exam: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ujian")
	}
	return helper.JsonCreated(c, "Ujian tersimpan", row)
}

// GET /exams?student_id=&from=&to=
func (ctl *ExamEntryController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.ExamEntryModel{})

	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		qry = qry.Where("exam_entry_student_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("from")); s != "" {
		qry = qry.Where("exam_entry_date >= ?", s)
	}
	if s := strings.TrimSpace(c.Query("to")); s != "" {
		qry = qry.Where("exam_entry_date <= ?", s)
	}

	var rows []model.ExamEntryModel
	if err := qry.Order("exam_entry_date ASC, exam_entry_attempt ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ujian")
	}
	return helper.JsonOK(c, "OK", rows)
}

// PATCH /exams/:id — partial update via map, hanya field yang dikirim
func (ctl *ExamEntryController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchExamEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
		}
		updates["exam_entry_date"] = datatypes.Date(d)
	}
	if req.Attempt != nil {
		updates["exam_entry_attempt"] = *req.Attempt
	}
	if req.Stage != nil {
		updates["exam_entry_stage"] = *req.Stage
	}
	if req.MemorizationScore != nil {
		updates["exam_entry_memorization_score"] = *req.MemorizationScore
	}
	if req.TajwidScore != nil {
		updates["exam_entry_tajwid_score"] = *req.TajwidScore
	}
	if req.FluencyScore != nil {
		updates["exam_entry_fluency_score"] = *req.FluencyScore
	}
	if req.Grade != nil {
		updates["exam_entry_grade"] = *req.Grade
	}
	if req.Notes != nil {
		updates["exam_entry_notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := ctl.DB.Model(&model.ExamEntryModel{}).
		Where("exam_entry_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ujian")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
	}

	var row model.ExamEntryModel
	if err := ctl.DB.Where("exam_entry_id = ?", id).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat ujian")
	}
	return helper.JsonUpdated(c, "Ujian diperbarui", row)
}

// DELETE /exams/:id
func (ctl *ExamEntryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Where("exam_entry_id = ?", id).Delete(&model.ExamEntryModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ujian")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ujian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Ujian dihapus", fiber.Map{"exam_entry_id": id})
}
