// file: internals/features/progress/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/attendance/controller"
)

// AttendanceTeacherRoutes — pencatatan & rekap kehadiran harian.
func AttendanceTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewAttendanceController(db)

	r := router.Group("/attendance")
	r.Get("/", ctl.ListByDate)
	r.Post("/", ctl.Mark)
	r.Post("/batch", ctl.BatchMark)
}
