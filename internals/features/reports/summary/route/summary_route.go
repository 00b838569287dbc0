// file: internals/features/reports/summary/route/summary_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/reports/summary/controller"
)

// SummaryTeacherRoutes — rekap mingguan/bulanan/triwulan.
func SummaryTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewSummaryController(db)

	r := router.Group("/reports")
	r.Get("/weekly", ctl.Weekly)
	r.Get("/monthly", ctl.Monthly)
	r.Get("/quarterly", ctl.Quarterly)
}

// SummaryPublicRoutes — laporan harian satu santri untuk wali.
func SummaryPublicRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewSummaryController(db)

	router.Get("/students/:id/report", ctl.DailyReport)
}
