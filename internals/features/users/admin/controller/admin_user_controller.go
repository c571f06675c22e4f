package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"appboard_backend/internals/constants"
	adminModel "appboard_backend/internals/features/users/admin/model"
	userModel "appboard_backend/internals/features/users/user/model"
	helper "appboard_backend/internals/helpers"
)

type AdminUserController struct {
	DB *gorm.DB
}

func NewAdminUserController(db *gorm.DB) *AdminUserController {
	return &AdminUserController{DB: db}
}

// GET /api/a/session — context admin hasil resolve (titik masuk bootstrap)
func (ctl *AdminUserController) GetSession(c *fiber.Ctx) error {
	email, _ := helper.GetUserEmail(c)
	userID, _ := c.Locals("user_id").(string)

	return helper.JsonOK(c, fiber.Map{
		"user_id": userID,
		"email":   email,
		"role":    helper.GetUserRole(c),
	})
}

// GET /api/a/users — list admin (paginated, tanpa kredensial)
func (ctl *AdminUserController) GetAdmins(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&adminModel.AdminUserModel{}).Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var admins []adminModel.AdminUserModel
	if err := ctl.DB.
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&admins).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, helper.BuildPaginatedData(admins, total, paging))
}

type createAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// POST /api/a/users — buat akun admin (super_admin only, gate di route).
// Sekalian buat baris users supaya admin baru bisa login lewat jalur biasa.
func (ctl *AdminUserController) CreateAdmin(c *fiber.Ctx) error {
	var body createAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Email == "" || body.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email dan password wajib diisi")
	}
	if len(body.Password) < 8 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password minimal 8 karakter")
	}
	if body.Role == "" {
		body.Role = constants.RoleAdmin
	}
	if !constants.IsAdminRole(body.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "role harus admin atau super_admin")
	}

	var createdBy *uuid.UUID
	if id, err := helper.GetUserUUID(c); err == nil {
		createdBy = &id
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), 12)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	admin := &adminModel.AdminUserModel{
		Email:     body.Email,
		Role:      body.Role,
		CreatedBy: createdBy,
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		// akun login; kalau email sudah ada sebagai user biasa, cukup promosi
		var n int64
		if err := tx.Model(&userModel.UserModel{}).Where("email = ?", body.Email).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			user := &userModel.UserModel{Email: body.Email, Password: string(hashed)}
			if err := tx.Create(user).Error; err != nil {
				return err
			}
		}
		return tx.Create(admin).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar sebagai admin")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, admin)
}

// DELETE /api/a/users?id= — super_admin only; hapus akun sendiri ditolak
// apapun rolenya.
func (ctl *AdminUserController) DeleteAdmin(c *fiber.Ctx) error {
	idRaw := strings.TrimSpace(c.Query("id"))
	if idRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id wajib diisi")
	}
	id, err := uuid.Parse(idRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var target adminModel.AdminUserModel
	if err := ctl.DB.First(&target, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Admin tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	actorEmail, _ := helper.GetUserEmail(c)
	if strings.EqualFold(target.Email, actorEmail) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak bisa menghapus akun admin sendiri")
	}

	if err := ctl.DB.Delete(&target).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, nil)
}
