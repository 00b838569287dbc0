package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingController "tahfidzku_backend/internals/features/system/settings/controller"
)

func AppSettingAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := settingController.NewAppSettingController(db)
	settings := router.Group("/settings")

	settings.Get("/", ctl.Get)
	settings.Patch("/maintenance", ctl.UpdateMaintenance)
}
