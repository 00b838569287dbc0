package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	circleController "tahfidzku_backend/internals/features/institute/circles/controller"
)

func CircleTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := circleController.NewCircleController(db)
	circles := router.Group("/circles")

	circles.Get("/", ctl.List)
	circles.Get("/:id", ctl.GetByID)
}

func CircleAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := circleController.NewCircleController(db)
	circles := router.Group("/circles")

	circles.Get("/", ctl.List)
	circles.Get("/:id", ctl.GetByID)
	circles.Post("/", ctl.Create)
	circles.Put("/:id", ctl.Update)
	circles.Delete("/:id", ctl.Delete)
}
