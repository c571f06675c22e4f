package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "appboard_backend/internals/features/users/user/model"
	helper "appboard_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/u/profile
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var user userModel.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, user)
}

type updateProfileRequest struct {
	Name *string `json:"name"`
}

// PATCH /api/u/profile — hanya name yang bisa diubah
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var body updateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if body.Name == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	var user userModel.UserModel
	if err := pc.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	trimmed := strings.TrimSpace(*body.Name)
	if trimmed == "" {
		user.Name = nil
	} else {
		user.Name = &trimmed
	}

	if err := pc.DB.Save(&user).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, user)
}
