// file: internals/features/institute/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	discontinuedModel "tahfidzku_backend/internals/features/institute/discontinued/model"
	"tahfidzku_backend/internals/features/institute/students/dto"
	"tahfidzku_backend/internals/features/institute/students/model"
	helper "tahfidzku_backend/internals/helpers"
)

type StudentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validator: validator.New()}
}

func toResponse(m *model.StudentModel, active bool) dto.StudentResponse {
	return dto.StudentResponse{
		ID:            m.StudentID,
		Name:          m.StudentName,
		Level:         m.StudentLevel,
		CircleID:      m.StudentCircleID,
		GuardianPhone: m.StudentGuardianPhone,
		Notes:         m.StudentNotes,
		IsActive:      active,
		CreatedAt:     m.StudentCreatedAt,
		UpdatedAt:     m.StudentUpdatedAt,
	}
}

// GET /students
// Query: circle_id, level, q, active_only=1, page, per_page
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	qry := ctl.DB.Model(&model.StudentModel{})

	if s := strings.TrimSpace(c.Query("circle_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "circle_id tidak valid")
		}
		qry = qry.Where("student_circle_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("level")); s != "" {
		if !constants.IsValidLevel(s) {
			return helper.JsonError(c, fiber.StatusBadRequest, "level tidak valid")
		}
		qry = qry.Where("student_level = ?", s)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		qry = qry.Where("student_name ILIKE ?", "%"+q+"%")
	}
	if c.QueryBool("active_only") {
		qry = qry.Where("student_id NOT IN (?)",
			ctl.DB.Model(&discontinuedModel.DiscontinuedStudentModel{}).
				Select("discontinued_student_student_id"))
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	var rows []model.StudentModel
	if err := qry.Order("student_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	inactive, err := ctl.inactiveIDSet()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i], !inactive[rows[i].StudentID]))
	}

	return helper.JsonList(c, "OK", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.StudentModel
	if err := ctl.DB.First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	inactive, err := ctl.inactiveIDSet()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonOK(c, "OK", toResponse(&row, !inactive[row.StudentID]))
}

// POST /students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidLevel(req.Level) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenjang tidak dikenal")
	}

	row := model.StudentModel{
		StudentName:          strings.TrimSpace(req.Name),
		StudentLevel:         req.Level,
		StudentCircleID:      req.CircleID,
		StudentGuardianPhone: req.GuardianPhone,
		StudentNotes:         req.Notes,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan santri")
	}
	return helper.JsonCreated(c, "Santri berhasil ditambahkan", toResponse(&row, true))
}

// PATCH /students/:id
func (ctl *StudentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.PatchStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing model.StudentModel
	if err := ctl.DB.First(&existing, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["student_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		if !constants.IsValidLevel(*req.Level) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenjang tidak dikenal")
		}
		updates["student_level"] = *req.Level
	}
	if req.CircleID != nil {
		updates["student_circle_id"] = *req.CircleID
	}
	if req.GuardianPhone != nil {
		updates["student_guardian_phone"] = *req.GuardianPhone
	}
	if req.Notes != nil {
		updates["student_notes"] = *req.Notes
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", toResponse(&existing, true))
	}

	if err := ctl.DB.Model(&existing).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan perubahan")
	}

	var after model.StudentModel
	if err := ctl.DB.First(&after, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonUpdated(c, "Santri berhasil diperbarui", toResponse(&after, true))
}

// DELETE /students/:id (hard delete; untuk berhenti normal pakai /discontinued)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Santri berhasil dihapus", fiber.Map{"student_id": id})
}

func (ctl *StudentController) inactiveIDSet() (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	if err := ctl.DB.Model(&discontinuedModel.DiscontinuedStudentModel{}).
		Pluck("discontinued_student_student_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
