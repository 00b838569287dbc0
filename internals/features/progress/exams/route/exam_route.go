// file: internals/features/progress/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/exams/controller"
)

// ExamTeacherRoutes — pencatatan sesi ujian per santri.
func ExamTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewExamEntryController(db)

	r := router.Group("/exams")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Patch("/:id", ctl.Patch)
	r.Delete("/:id", ctl.Delete)
}
