// file: internals/features/progress/beginner_recitations/route/beginner_recitation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/features/progress/beginner_recitations/controller"
)

// BeginnerRecitationTeacherRoutes — setoran halaman/baris santri tamhidi.
func BeginnerRecitationTeacherRoutes(router fiber.Router, db *gorm.DB) {
	ctl := controller.NewBeginnerRecitationController(db)

	r := router.Group("/beginner-recitations")
	r.Get("/", ctl.List)
	r.Post("/", ctl.Create)
	r.Delete("/:id", ctl.Delete)
}
