// file: internals/features/institute/discontinued/controller/discontinued_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/institute/discontinued/model"
	studentModel "tahfidzku_backend/internals/features/institute/students/model"
	helper "tahfidzku_backend/internals/helpers"
)

type DiscontinuedController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDiscontinuedController(db *gorm.DB) *DiscontinuedController {
	return &DiscontinuedController{DB: db, Validator: validator.New()}
}

type discontinueRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Reason    string    `json:"reason" validate:"omitempty,max=500"`
	Date      string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// GET /discontinued
func (ctl *DiscontinuedController) List(c *fiber.Ctx) error {
	var rows []model.DiscontinuedStudentModel
	if err := ctl.DB.Order("discontinued_student_created_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri berhenti")
	}
	return helper.JsonOK(c, "OK", rows)
}

// POST /discontinued — catat santri berhenti.
// Identitas DISALIN ke side table; baris students dan seluruh riwayat
// setoran/kehadiran/poin dibiarkan utuh.
func (ctl *DiscontinuedController) Discontinue(c *fiber.Ctx) error {
	var req discontinueRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	var existing int64
	if err := ctl.DB.Model(&model.DiscontinuedStudentModel{}).
		Where("discontinued_student_student_id = ?", req.StudentID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa status santri")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Santri sudah tercatat berhenti")
	}

	date := time.Now()
	if s := strings.TrimSpace(req.Date); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
		}
		date = parsed
	}

	row := model.DiscontinuedStudentModel{
		DiscontinuedStudentStudentID: student.StudentID,
		DiscontinuedStudentName:      student.StudentName,
		DiscontinuedStudentLevel:     student.StudentLevel,
		DiscontinuedStudentCircleID:  student.StudentCircleID,
		DiscontinuedStudentReason:    strings.TrimSpace(req.Reason),
		DiscontinuedStudentDate:      datatypes.Date(date),
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat santri berhenti")
	}
	return helper.JsonCreated(c, "Santri tercatat berhenti", row)
}

// DELETE /discontinued/:student_id — santri kembali aktif.
func (ctl *DiscontinuedController) Restore(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.DiscontinuedStudentModel{},
		"discontinued_student_student_id = ?", studentID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengembalikan santri")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak tercatat berhenti")
	}
	return helper.JsonDeleted(c, "Santri kembali aktif", fiber.Map{"student_id": studentID})
}
