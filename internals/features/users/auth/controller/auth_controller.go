package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "appboard_backend/internals/features/users/auth/service"
	helper "appboard_backend/internals/helpers"
)

type AuthController struct {
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: authService.NewAuthService(db)}
}

type registerRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	user, err := ac.Service.Register(body.Email, body.Password, body.Name)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	token, user, err := ac.Service.Login(body.Email, body.Password)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// POST /api/auth/change-password (auth)
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var body changePasswordRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	if err := ac.Service.ChangePassword(userID.String(), body.CurrentPassword, body.NewPassword); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, fiber.Map{"message": "Password berhasil diganti"})
}
