// file: internals/features/system/settings/controller/app_setting_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/system/settings/model"
	helper "tahfidzku_backend/internals/helpers"
	"tahfidzku_backend/internals/middlewares"
)

type AppSettingController struct {
	DB *gorm.DB
}

func NewAppSettingController(db *gorm.DB) *AppSettingController {
	return &AppSettingController{DB: db}
}

// GET /settings
func (ctl *AppSettingController) Get(c *fiber.Ctx) error {
	row, err := ctl.loadOrInit()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonOK(c, "OK", row)
}

// PATCH /settings/maintenance
func (ctl *AppSettingController) UpdateMaintenance(c *fiber.Ctx) error {
	var req struct {
		Enabled *bool   `json:"maintenance_mode"`
		Message *string `json:"maintenance_message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if req.Enabled == nil && req.Message == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	row, err := ctl.loadOrInit()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}

	updates := map[string]interface{}{}
	if req.Enabled != nil {
		updates["app_setting_maintenance_mode"] = *req.Enabled
	}
	if req.Message != nil {
		updates["app_setting_maintenance_message"] = *req.Message
	}

	if err := ctl.DB.Model(row).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}

	// flag baru harus langsung terbaca middleware
	middlewares.ResetMaintenanceCache()

	if err := ctl.DB.First(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan maintenance diperbarui", row)
}

func (ctl *AppSettingController) loadOrInit() (*model.AppSettingModel, error) {
	var row model.AppSettingModel
	err := ctl.DB.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := ctl.DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
