package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/constants"
	adminModel "appboard_backend/internals/features/users/admin/model"
	helper "appboard_backend/internals/helpers"
)

// AdminContext me-resolve ulang role admin dari tabel admin_users pada SETIAP
// request /api/a — klaim role di token tidak dipercaya (proteksi stale role
// setelah demosi). Overwrite userRole di locals dengan hasil resolve.
//
// Bootstrap: saat tabel admin_users kosong, actor terautentikasi pertama
// dipromosikan jadi super_admin. Race dua kunjungan pertama bersamaan ditutup
// oleh unique index lower(email): insert-or-fail, yang kalah re-read.
func AdminContext(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := helper.GetUserEmail(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		admin, err := resolveAdmin(db, c, email)
		if err != nil {
			return helper.JsonFromError(c, err)
		}

		c.Locals("userRole", admin.Role)
		c.Locals("admin_id", admin.ID.String())
		return c.Next()
	}
}

func resolveAdmin(db *gorm.DB, c *fiber.Ctx, email string) (*adminModel.AdminUserModel, error) {
	var admin adminModel.AdminUserModel
	err := db.Where("lower(email) = lower(?)", email).First(&admin).Error
	if err == nil {
		if !constants.IsAdminRole(admin.Role) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Bukan admin — cek apakah ini kunjungan bootstrap (tabel kosong)
	var count int64
	if err := db.Model(&adminModel.AdminUserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden")
	}

	return bootstrapSuperAdmin(db, c, email)
}

func bootstrapSuperAdmin(db *gorm.DB, c *fiber.Ctx, email string) (*adminModel.AdminUserModel, error) {
	var createdBy *uuid.UUID
	if id, err := helper.GetUserUUID(c); err == nil {
		createdBy = &id
	}

	admin := &adminModel.AdminUserModel{
		Email:     strings.ToLower(email),
		Role:      constants.RoleSuperAdmin,
		CreatedBy: createdBy,
	}
	if err := db.Create(admin).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// kalah race kunjungan pertama: baris sudah dibuat request lain
			var existing adminModel.AdminUserModel
			if err := db.Where("lower(email) = lower(?)", email).First(&existing).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden")
			}
			return &existing, nil
		}
		return nil, err
	}

	log.Printf("[INFO] Bootstrap super_admin pertama: %s", admin.Email)
	return admin, nil
}
