// file: internals/features/institute/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/institute/teachers/model"
	helper "tahfidzku_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validator: validator.New()}
}

type upsertTeacherRequest struct {
	Name   string     `json:"teacher_name" validate:"required,max=150"`
	Phone  *string    `json:"teacher_phone" validate:"omitempty,max=30"`
	UserID *uuid.UUID `json:"teacher_user_id" validate:"omitempty"`
}

// GET /teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	qry := ctl.DB.Model(&model.TeacherModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		qry = qry.Where("teacher_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajar")
	}

	var rows []model.TeacherModel
	if err := qry.Order("teacher_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajar")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.TeacherModel
	if err := ctl.DB.First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajar")
	}
	return helper.JsonOK(c, "OK", row)
}

// POST /teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req upsertTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.TeacherModel{
		TeacherName:   strings.TrimSpace(req.Name),
		TeacherPhone:  req.Phone,
		TeacherUserID: req.UserID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengajar")
	}
	return helper.JsonCreated(c, "Pengajar berhasil ditambahkan", row)
}

// PUT /teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req upsertTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.TeacherModel
	if err := ctl.DB.First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pengajar")
	}

	row.TeacherName = strings.TrimSpace(req.Name)
	row.TeacherPhone = req.Phone
	row.TeacherUserID = req.UserID
	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}
	return helper.JsonUpdated(c, "Pengajar berhasil diperbarui", row)
}

// DELETE /teachers/:id
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengajar")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengajar tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pengajar berhasil dihapus", fiber.Map{"teacher_id": id})
}
