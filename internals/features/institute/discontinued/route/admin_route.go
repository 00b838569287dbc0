package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	discontinuedController "tahfidzku_backend/internals/features/institute/discontinued/controller"
)

func DiscontinuedAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := discontinuedController.NewDiscontinuedController(db)
	discontinued := router.Group("/discontinued")

	discontinued.Get("/", ctl.List)
	discontinued.Post("/", ctl.Discontinue)
	discontinued.Delete("/:student_id", ctl.Restore)
}
