package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	teacherController "tahfidzku_backend/internals/features/institute/teachers/controller"
)

func TeacherAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := teacherController.NewTeacherController(db)
	teachers := router.Group("/teachers")

	teachers.Get("/", ctl.List)
	teachers.Get("/:id", ctl.GetByID)
	teachers.Post("/", ctl.Create)
	teachers.Put("/:id", ctl.Update)
	teachers.Delete("/:id", ctl.Delete)
}
