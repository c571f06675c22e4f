package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appController "appboard_backend/internals/features/apps/controller"
	"appboard_backend/internals/middlewares"
	authMw "appboard_backend/internals/middlewares/auth"
)

// AppPublicRoutes: board publik + submit (auth opsional) + pendaftaran tester
// (wajib auth).
func AppPublicRoutes(app fiber.Router, db *gorm.DB) {
	appCtrl := appController.NewAppController(db)
	testCtrl := appController.NewTestRequestController(db)

	app.Get("/apps", appCtrl.GetPublicApps)
	app.Post("/apps/submit",
		middlewares.SubmitRateLimiter(),
		authMw.OptionalAuthMiddleware(),
		appCtrl.SubmitApp,
	)

	app.Post("/apps/:id/test", authMw.AuthMiddleware(), testCtrl.Register)
	app.Delete("/apps/:id/test", authMw.AuthMiddleware(), testCtrl.Unregister)
}
