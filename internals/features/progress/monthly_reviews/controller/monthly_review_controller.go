// file: internals/features/progress/monthly_reviews/controller/monthly_review_controller.go
package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidzku_backend/internals/features/progress/monthly_reviews/model"
	helper "tahfidzku_backend/internals/helpers"
)

type MonthlyReviewController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMonthlyReviewController(db *gorm.DB) *MonthlyReviewController {
	return &MonthlyReviewController{DB: db, Validator: validator.New()}
}

type upsertMonthlyReviewRequest struct {
	StudentID string  `json:"student_id" validate:"required,uuid"`
	Month     int     `json:"month" validate:"required,min=1,max=12"`
	Year      int     `json:"year" validate:"required,min=2000,max=2200"`
	Score     int     `json:"score" validate:"min=0,max=100"`
	Notes     *string `json:"notes,omitempty"`
}

// POST /monthly-reviews — upsert pada (santri, bulan, tahun)
func (ctl *MonthlyReviewController) Upsert(c *fiber.Ctx) error {
	var req upsertMonthlyReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.StudentID)

	row := model.MonthlyReviewModel{
		MonthlyReviewStudentID: studentID,
		MonthlyReviewMonth:     req.Month,
		MonthlyReviewYear:      req.Year,
		MonthlyReviewScore:     req.Score,
		MonthlyReviewNotes:     req.Notes,
	}
	err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "monthly_review_student_id"},
			{Name: "monthly_review_month"},
			{Name: "monthly_review_year"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_review_score", "monthly_review_notes"}),
	}).Create(&row).Error
	if err != nil {
		log.Printf("[ERROR] upsert monthly review: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penilaian bulanan")
	}
	return helper.JsonOK(c, "Penilaian bulanan tersimpan", row)
}

// GET /monthly-reviews?student_id=&month=&year=
func (ctl *MonthlyReviewController) List(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&model.MonthlyReviewModel{})

	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		qry = qry.Where("monthly_review_student_id = ?", id)
	}
	if s := strings.TrimSpace(c.Query("month")); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "month tidak valid")
		}
		qry = qry.Where("monthly_review_month = ?", m)
	}
	if s := strings.TrimSpace(c.Query("year")); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "year tidak valid")
		}
		qry = qry.Where("monthly_review_year = ?", y)
	}

	var rows []model.MonthlyReviewModel
	if err := qry.Order("monthly_review_year ASC, monthly_review_month ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penilaian bulanan")
	}
	return helper.JsonOK(c, "OK", rows)
}

// DELETE /monthly-reviews/:id
func (ctl *MonthlyReviewController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Where("monthly_review_id = ?", id).Delete(&model.MonthlyReviewModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus penilaian")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Penilaian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Penilaian dihapus", fiber.Map{"monthly_review_id": id})
}
