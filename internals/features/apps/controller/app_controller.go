package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/features/apps/dto"
	appRepo "appboard_backend/internals/features/apps/repository"
	helper "appboard_backend/internals/helpers"
)

// Validator instance untuk request DTO
var validate = validator.New()

// AppController: board publik — list app visible + submit.
type AppController struct {
	Repo appRepo.AppRepository
}

func NewAppController(db *gorm.DB) *AppController {
	return &AppController{Repo: appRepo.NewAppRepository(db)}
}

// GET /api/apps — board publik: approved ATAU listing test
func (ctl *AppController) GetPublicApps(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	items, total, err := ctl.Repo.List(dto.AppFilter{VisibleOnly: true}, paging)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, helper.BuildPaginatedData(dto.FromModels(items), total, paging))
}

// POST /api/apps/submit — auth opsional; tanpa token = submission anonim
func (ctl *AppController) SubmitApp(c *fiber.Ctx) error {
	var body dto.SubmitAppRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}

	body.Normalize()
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var createdBy *uuid.UUID
	if id, err := helper.GetUserUUID(c); err == nil {
		createdBy = &id
	}

	m, err := body.ToModel(createdBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	if err := m.Validate(); err != nil {
		return helper.JsonFromError(c, err)
	}

	if err := ctl.Repo.Create(m); err != nil {
		return helper.WritePGError(c, err)
	}

	resp := dto.FromModel(m)
	return helper.JsonCreated(c, resp)
}
