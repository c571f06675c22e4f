package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "appboard_backend/internals/features/users/user/controller"
)

// UserRoutes: profil diri (group sudah dibungkus AuthMiddleware).
func UserRoutes(app fiber.Router, db *gorm.DB) {
	profileCtrl := userController.NewProfileController(db)

	app.Get("/profile", profileCtrl.GetProfile)
	app.Patch("/profile", profileCtrl.UpdateProfile)
}
