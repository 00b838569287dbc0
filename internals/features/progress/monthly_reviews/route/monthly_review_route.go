// file: internals/features/progress/monthly_reviews/route/monthly_review_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/monthly_reviews/controller"
)

// MonthlyReviewTeacherRoutes — penilaian muraja'ah bulanan.
func MonthlyReviewTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewMonthlyReviewController(db)

	r := router.Group("/monthly-reviews")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Upsert)
	r.Delete("/:id", ctl.Delete)
}
