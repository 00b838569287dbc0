// file: internals/features/institute/circles/controller/circle_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/institute/circles/model"
	studentModel "tahfidzku_backend/internals/features/institute/students/model"
	helper "tahfidzku_backend/internals/helpers"
)

type CircleController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCircleController(db *gorm.DB) *CircleController {
	return &CircleController{DB: db, Validator: validator.New()}
}

type upsertCircleRequest struct {
	Name      string     `json:"circle_name" validate:"required,max=150"`
	TeacherID *uuid.UUID `json:"circle_teacher_id" validate:"omitempty"`
}

type circleWithCount struct {
	model.CircleModel
	CircleStudentCount int64 `json:"circle_student_count"`
}

// GET /circles — termasuk jumlah santri per halaqah
func (ctl *CircleController) List(c *fiber.Ctx) error {
	var rows []model.CircleModel
	if err := ctl.DB.Order("circle_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqah")
	}

	type countRow struct {
		CircleID uuid.UUID `gorm:"column:student_circle_id"`
		N        int64     `gorm:"column:n"`
	}
	var counts []countRow
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Select("student_circle_id, COUNT(*) AS n").
		Where("student_circle_id IS NOT NULL").
		Group("student_circle_id").
		Scan(&counts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqah")
	}
	countByID := make(map[uuid.UUID]int64, len(counts))
	for _, cr := range counts {
		countByID[cr.CircleID] = cr.N
	}

	out := make([]circleWithCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, circleWithCount{CircleModel: r, CircleStudentCount: countByID[r.CircleID]})
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /circles/:id
func (ctl *CircleController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.CircleModel
	if err := ctl.DB.First(&row, "circle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqah")
	}
	return helper.JsonOK(c, "OK", row)
}

// POST /circles
func (ctl *CircleController) Create(c *fiber.Ctx) error {
	var req upsertCircleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.CircleModel{
		CircleName:      strings.TrimSpace(req.Name),
		CircleTeacherID: req.TeacherID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan halaqah")
	}
	return helper.JsonCreated(c, "Halaqah berhasil ditambahkan", row)
}

// PUT /circles/:id
func (ctl *CircleController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req upsertCircleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.CircleModel
	if err := ctl.DB.First(&row, "circle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data halaqah")
	}

	row.CircleName = strings.TrimSpace(req.Name)
	row.CircleTeacherID = req.TeacherID
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Halaqah berhasil diperbarui", row)
}

// DELETE /circles/:id — santri anggota dilepas dulu (set NULL), tidak ikut terhapus
func (ctl *CircleController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&studentModel.StudentModel{}).
			Where("student_circle_id = ?", id).
			Update("student_circle_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.CircleModel{}, "circle_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Halaqah tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus halaqah")
	}
	return helper.JsonDeleted(c, "Halaqah berhasil dihapus", fiber.Map{"circle_id": id})
}
