package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	authController "tahfidzku_backend/internals/features/users/auth/controller"
	authService "tahfidzku_backend/internals/features/users/auth/service"
	"tahfidzku_backend/internals/middlewares"
	authMiddleware "tahfidzku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:           configs.JWTSecret,
		BlacklistChecker: authService.IsTokenBlacklisted(db),
	})

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/logout", jwt, ctl.Logout)
	auth.Get("/me", jwt, ctl.Me)
}

// AuthAdminRoutes — pembuatan akun hanya lewat admin, tidak ada
// self-signup.
func AuthAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	router.Post("/users", ctl.Register)
}
