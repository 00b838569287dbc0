package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pointController "tahfidzku_backend/internals/features/progress/points/controller"
)

func PointTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := pointController.NewPointEntryController(db)
	points := router.Group("/points")

	points.Post("/", ctl.Create)
	points.Get("/student/:student_id", ctl.ListByStudent)
	points.Get("/leaderboard", ctl.Leaderboard)
	points.Delete("/:id", ctl.Delete)
}
