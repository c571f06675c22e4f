package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/constants"
	"appboard_backend/internals/features/apps/dto"
	appRepo "appboard_backend/internals/features/apps/repository"
	appService "appboard_backend/internals/features/apps/service"
	helper "appboard_backend/internals/helpers"
)

// AdminAppsController: moderasi — list semua status, transisi status,
// edit field, dan hapus (cascade ke tester registration).
type AdminAppsController struct {
	Repo   appRepo.AppRepository
	Tester *appService.TesterService
}

func NewAdminAppsController(db *gorm.DB) *AdminAppsController {
	return &AdminAppsController{
		Repo:   appRepo.NewAppRepository(db),
		Tester: appService.NewTesterService(db),
	}
}

// GET /api/a/apps?page&limit&status&q&submission_type&platform
func (ctl *AdminAppsController) GetApps(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	filter := dto.AppFilter{
		Q: strings.TrimSpace(c.Query("q")),
	}
	if s := c.Query("status"); constants.IsValidStatus(s) {
		filter.Status = s
	}
	if st := c.Query("submission_type"); constants.IsValidSubmissionType(st) {
		filter.SubmissionType = st
	}
	if p := c.Query("platform"); constants.IsValidPlatform(p) {
		filter.Platform = p
	}

	items, total, err := ctl.Repo.List(filter, paging)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, helper.BuildPaginatedData(dto.FromModels(items), total, paging))
}

// PATCH /api/a/apps — transisi status (lifecycle) dan/atau edit field
func (ctl *AdminAppsController) UpdateApp(c *fiber.Ctx) error {
	var body dto.UpdateAppRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	appID, err := uuid.Parse(body.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	m, err := ctl.Repo.GetByID(appID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	if body.Status != nil && *body.Status != m.Status {
		if err := appService.Transition(m, *body.Status); err != nil {
			return helper.JsonFromError(c, err)
		}
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

// DELETE /api/a/apps?id=
func (ctl *AdminAppsController) DeleteApp(c *fiber.Ctx) error {
	idRaw := strings.TrimSpace(c.Query("id"))
	if idRaw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Parameter id wajib diisi")
	}
	appID, err := uuid.Parse(idRaw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.Repo.Delete(appID); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, nil)
}

// GET /api/a/apps/:id/testers — admin boleh enumerasi pendaftar app manapun
func (ctl *AdminAppsController) GetTesters(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	applicants, err := ctl.Tester.ListApplicantsFor(appID, uuid.Nil, true)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, applicants)
}
