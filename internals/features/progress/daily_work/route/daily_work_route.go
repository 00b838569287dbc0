// file: internals/features/progress/daily_work/route/daily_work_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/daily_work/controller"
)

// DailyWorkTeacherRoutes — setoran harian + quick-entry roster.
func DailyWorkTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewDailyWorkController(db)

	r := router.Group("/daily-work")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Upsert)
	r.Post("/batch", ctl.BatchQuickEntry)
	r.Delete("/:id", ctl.Delete)
}
