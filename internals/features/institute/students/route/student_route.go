package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "tahfidzku_backend/internals/features/institute/students/controller"
)

// Teacher & admin: baca roster. Admin: kelola data santri.
func StudentTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)
	students := router.Group("/students")

	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
}

func StudentAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := studentController.NewStudentController(db)
	students := router.Group("/students")

	students.Get("/", ctl.List)
	students.Get("/:id", ctl.GetByID)
	students.Post("/", ctl.Create)
	students.Patch("/:id", ctl.Patch)
	students.Delete("/:id", ctl.Delete)
}
