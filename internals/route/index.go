// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidzku_backend/internals/configs"
	"tahfidzku_backend/internals/constants"
	circleRoute "tahfidzku_backend/internals/features/institute/circles/route"
	discontinuedRoute "tahfidzku_backend/internals/features/institute/discontinued/route"
	studentRoute "tahfidzku_backend/internals/features/institute/students/route"
	teacherRoute "tahfidzku_backend/internals/features/institute/teachers/route"
	attendanceRoute "tahfidzku_backend/internals/features/progress/attendance/route"
	beginnerRoute "tahfidzku_backend/internals/features/progress/beginner_recitations/route"
	dailyWorkRoute "tahfidzku_backend/internals/features/progress/daily_work/route"
	examRoute "tahfidzku_backend/internals/features/progress/exams/route"
	monthlyReviewRoute "tahfidzku_backend/internals/features/progress/monthly_reviews/route"
	pointRoute "tahfidzku_backend/internals/features/progress/points/route"
	summaryRoute "tahfidzku_backend/internals/features/reports/summary/route"
	settingRoute "tahfidzku_backend/internals/features/system/settings/route"
	authRoute "tahfidzku_backend/internals/features/users/auth/route"
	authService "tahfidzku_backend/internals/features/users/auth/service"
	"tahfidzku_backend/internals/middlewares"
	authMiddleware "tahfidzku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	jwtOpts := authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authService.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	}

	// ===================== GROUPS =====================

	// PUBLIC → tanpa login, tetap kena maintenance guard
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public",
		middlewares.MaintenanceGuard(db),
	)

	// TEACHER → guru & admin
	log.Println("[INFO] Setting up TEACHER group (Auth + RoleCheck)...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireRoles("progress", constants.TeacherAndAbove...),
		middlewares.MaintenanceGuard(db),
	)

	// ADMIN → tanpa maintenance guard supaya mode maintenance bisa dimatikan
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(jwtOpts),
		authMiddleware.RequireRoles("admin", constants.AdminOnly...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Institute routes...")
	studentRoute.StudentTeacherRoutes(teacher, db)
	studentRoute.StudentAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	circleRoute.CircleTeacherRoutes(teacher, db)
	circleRoute.CircleAdminRoutes(admin, db)
	discontinuedRoute.DiscontinuedAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Progress routes...")
	dailyWorkRoute.DailyWorkTeacherRoutes(teacher, db)
	beginnerRoute.BeginnerRecitationTeacherRoutes(teacher, db)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)
	pointRoute.PointTeacherRoutes(teacher, db)
	examRoute.ExamTeacherRoutes(teacher, db)
	monthlyReviewRoute.MonthlyReviewTeacherRoutes(teacher, db)

	log.Println("[INFO] Mounting Report routes...")
	summaryRoute.SummaryTeacherRoutes(teacher, db)
	summaryRoute.SummaryPublicRoutes(public, db)

	log.Println("[INFO] Mounting System routes...")
	settingRoute.AppSettingAdminRoutes(admin, db)
	authRoute.AuthAdminRoutes(admin, db)
}
