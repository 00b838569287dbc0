// file: internals/features/progress/points/controller/point_entry_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/constants"
	"tahfidzku_backend/internals/features/progress/points/dto"
	"tahfidzku_backend/internals/features/progress/points/model"
	"tahfidzku_backend/internals/features/progress/points/service"
	helper "tahfidzku_backend/internals/helpers"
)

type PointEntryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPointEntryController(db *gorm.DB) *PointEntryController {
	return &PointEntryController{DB: db, Validator: validator.New()}
}

// POST /points
func (ctl *PointEntryController) Create(c *fiber.Ctx) error {
	var req dto.CreatePointEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidPointType(req.Type) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Jenis poin tidak dikenal")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tanggal tidak valid")
	}

	teacherID := req.TeacherID
	if teacherID == nil {
		if id := helper.GetTeacherIDFromToken(c); id != uuid.Nil {
			teacherID = &id
		}
	}

	row := model.PointEntryModel{
		PointEntryStudentID: req.StudentID,
		PointEntryDate:      datatypes.Date(date),
		PointEntryType:      req.Type,
		PointEntryPoints:    req.Points,
		PointEntryReason:    strings.TrimSpace(req.Reason),
		PointEntryTeacherID: teacherID,
	}
	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan poin")
	}
	return helper.JsonCreated(c, "Poin berhasil dicatat", row)
}

// GET /points/student/:student_id
// Query: type, from, to (YYYY-MM-DD)
func (ctl *PointEntryController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := helper.ParseUUIDParam(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	qry := ctl.DB.Model(&model.PointEntryModel{}).
		Where("point_entry_student_id = ?", studentID)

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		if !constants.IsValidPointType(t) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Jenis poin tidak dikenal")
		}
		qry = qry.Where("point_entry_type = ?", t)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		qry = qry.Where("point_entry_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		qry = qry.Where("point_entry_date <= ?", to)
	}

	var rows []model.PointEntryModel
	if err := qry.Order("point_entry_date ASC, point_entry_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data poin")
	}

	var total int64
	for _, r := range rows {
		total += int64(r.PointEntryPoints)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"entries": rows,
		"total":   total,
	})
}

// GET /points/leaderboard?circle_id=&limit=
func (ctl *PointEntryController) Leaderboard(c *fiber.Ctx) error {
	var circleID *uuid.UUID
	if s := strings.TrimSpace(c.Query("circle_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "circle_id tidak valid")
		}
		circleID = &id
	}
	limit := c.QueryInt("limit", 0)

	rows, err := service.Leaderboard(ctl.DB, circleID, limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung leaderboard")
	}
	return helper.JsonOK(c, "OK", rows)
}

// DELETE /points/:id — koreksi entri yang salah input
func (ctl *PointEntryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Delete(&model.PointEntryModel{}, "point_entry_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus poin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Entri poin tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Entri poin dihapus", fiber.Map{"point_entry_id": id})
}
