package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appController "appboard_backend/internals/features/apps/controller"
)

// AppAdminRoutes: moderasi (group sudah dibungkus Auth + AdminContext +
// role gate admin/super_admin).
func AppAdminRoutes(app fiber.Router, db *gorm.DB) {
	adminCtrl := appController.NewAdminAppsController(db)

	app.Get("/apps", adminCtrl.GetApps)
	app.Patch("/apps", adminCtrl.UpdateApp)
	app.Delete("/apps", adminCtrl.DeleteApp)
	app.Get("/apps/:id/testers", adminCtrl.GetTesters)
}
