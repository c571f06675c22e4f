package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "appboard_backend/internals/features/users/auth/controller"
	"appboard_backend/internals/middlewares"
	authMw "appboard_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/change-password", authMw.AuthMiddleware(), ctrl.ChangePassword)
}
