package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"appboard_backend/internals/constants"
	adminController "appboard_backend/internals/features/users/admin/controller"
	authMw "appboard_backend/internals/middlewares/auth"
)

// AdminUserRoutes: manajemen akun admin. Baca boleh admin biasa; tulis/hapus
// hanya super_admin (role hasil resolve ulang AdminContext, bukan klaim token).
func AdminUserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminUserController(db)

	app.Get("/session", ctrl.GetSession)
	app.Get("/users", ctrl.GetAdmins)
	app.Post("/users",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("manajemen admin"), constants.SuperAdminOnly...),
		ctrl.CreateAdmin,
	)
	app.Delete("/users",
		authMw.OnlyRoles(constants.RoleErrorSuperAdmin("manajemen admin"), constants.SuperAdminOnly...),
		ctrl.DeleteAdmin,
	)
}
