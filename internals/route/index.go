// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"appboard_backend/internals/constants"
	appRoute "appboard_backend/internals/features/apps/route"
	adminRoute "appboard_backend/internals/features/users/admin/route"
	authRoute "appboard_backend/internals/features/users/auth/route"
	userRoute "appboard_backend/internals/features/users/user/route"
	authMw "appboard_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	appRoute.AppPublicRoutes(api, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authMw.AuthMiddleware())
	userRoute.UserRoutes(private, db)
	appRoute.AppUserRoutes(private, db)

	// ===================== ADMIN =====================
	// Role di-resolve ulang dari admin_users per request (bukan klaim token)
	log.Println("[INFO] Setting up ADMIN group (Auth + AdminContext + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(),
		authMw.AdminContext(db),
		authMw.OnlyRoles(constants.RoleErrorAdmin("panel admin"), constants.AdminAndAbove...),
	)
	appRoute.AppAdminRoutes(admin, db)
	adminRoute.AdminUserRoutes(admin, db)
}
