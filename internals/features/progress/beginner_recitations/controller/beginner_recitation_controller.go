// file: internals/features/progress/beginner_recitations/controller/beginner_recitation_controller.go
package controller

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/beginner_recitations/dto"
	"tahfidzku_backend/internals/features/progress/beginner_recitations/model"
	helper "tahfidzku_backend/internals/helpers"
)

type BeginnerRecitationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewBeginnerRecitationController(db *gorm.DB) *BeginnerRecitationController {
	return &BeginnerRecitationController{DB: db, Validator: validator.New()}
}

// POST /beginner-recitations
func (ctl *BeginnerRecitationController) Create(c *fiber.Ctx) error {
	var req dto.CreateBeginnerRecitationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidGrade(req.Grade) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nilai tidak dikenal")
	}

	studentID, _ := uuid.Parse(req.StudentID)
	date, _ := time.Parse("2006-01-02", req.Date)

	var teacherID *uuid.UUID
	if id := helper.GetTeacherIDFromToken(c); id != uuid.Nil {
		teacherID = &id
	}

	row := model.BeginnerRecitationModel{
		BeginnerRecitationStudentID: studentID,
		BeginnerRecitationDate:      datatypes.Date(date),
		BeginnerRecitationPage:      req.Page,
		BeginnerRecitationLines:     pq.Int64Array(req.Lines),
		BeginnerRecitationGrade:     req.Grade,
		BeginnerRecitationTeacherID: teacherID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create beginner recitation: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan setoran tamhidi")
	}
	return helper.JsonCreated(c, "Setoran tamhidi tersimpan", row)
}

// GET /beginner-recitations?date=&student_id=
func (ctl *BeginnerRecitationController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.BeginnerRecitationModel{})

	if s := strings.TrimSpace(c.Query("date")); s != "" {
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
		}
		qry = qry.Where("beginner_recitation_date = ?", s)
	}
	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		qry = qry.Where("beginner_recitation_student_id = ?", id)
	}

	var rows []model.BeginnerRecitationModel
	if err := qry.Order("beginner_recitation_date ASC, beginner_recitation_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil setoran tamhidi")
	}
	return helper.JsonOK(c, "OK", rows)
}

// DELETE /beginner-recitations/:id
func (ctl *BeginnerRecitationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Where("beginner_recitation_id = ?", id).Delete(&model.BeginnerRecitationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus setoran")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Setoran tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Setoran dihapus", fiber.Map{"beginner_recitation_id": id})
}
