package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/features/apps/dto"
	appRepo "appboard_backend/internals/features/apps/repository"
	appService "appboard_backend/internals/features/apps/service"
	helper "appboard_backend/internals/helpers"
)

// UserAppsController: dashboard — app milik user + daftar pendaftarnya.
type UserAppsController struct {
	Repo   appRepo.AppRepository
	Tester *appService.TesterService
}

func NewUserAppsController(db *gorm.DB) *UserAppsController {
	return &UserAppsController{
		Repo:   appRepo.NewAppRepository(db),
		Tester: appService.NewTesterService(db),
	}
}

type ownedAppResponse struct {
	dto.AppResponse
	Applicants []appService.Applicant `json:"applicants"`
}

// GET /api/u/apps — app milik caller + daftar applicant per app
func (ctl *UserAppsController) GetMyApps(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	apps, err := ctl.Repo.ListByOwner(userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]ownedAppResponse, 0, len(apps))
	for i := range apps {
		item := ownedAppResponse{AppResponse: dto.FromModel(&apps[i])}
		applicants, err := ctl.Tester.ListApplicantsFor(apps[i].ID, userID, false)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		item.Applicants = applicants
		out = append(out, item)
	}
	return helper.JsonOK(c, out)
}

// PATCH /api/u/apps — update parsial, hanya owner; status tidak boleh
// disentuh dari jalur ini (hanya admin yang mentransisikan status).
func (ctl *UserAppsController) UpdateMyApp(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var body dto.UpdateAppRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if body.Status != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Status hanya bisa diubah admin")
	}

	appID, err := uuid.Parse(body.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	m, err := ctl.Repo.GetByID(appID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if m.CreatedBy == nil || *m.CreatedBy != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan pemilik app ini")
	}

	if err := body.ApplyToModel(m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	if err := m.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := ctl.Repo.Update(m); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, dto.FromModel(m))
}
