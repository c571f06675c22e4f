package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appController "appboard_backend/internals/features/apps/controller"
)

// AppUserRoutes: dashboard user (group sudah dibungkus AuthMiddleware).
func AppUserRoutes(app fiber.Router, db *gorm.DB) {
	userCtrl := appController.NewUserAppsController(db)
	testCtrl := appController.NewTestRequestController(db)

	app.Get("/apps", userCtrl.GetMyApps)
	app.Patch("/apps", userCtrl.UpdateMyApp)
	app.Get("/test-requests", testCtrl.GetMine)
}
