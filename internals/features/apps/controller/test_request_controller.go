package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"appboard_backend/internals/features/apps/dto"
	appService "appboard_backend/internals/features/apps/service"
	helper "appboard_backend/internals/helpers"
)

// TestRequestController: pendaftaran tester (POST/DELETE /api/apps/:id/test)
// + daftar pendaftaran milik user (dashboard).
type TestRequestController struct {
	Service *appService.TesterService
}

func NewTestRequestController(db *gorm.DB) *TestRequestController {
	return &TestRequestController{Service: appService.NewTesterService(db)}
}

// POST /api/apps/:id/test
func (ctl *TestRequestController) Register(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	req, err := ctl.Service.Register(appID, userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, req)
}

// DELETE /api/apps/:id/test
func (ctl *TestRequestController) Unregister(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := ctl.Service.Unregister(appID, userID); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, nil)
}

type myTestRequestResponse struct {
	ID        uuid.UUID        `json:"id"`
	AppID     uuid.UUID        `json:"app_id"`
	CreatedAt string           `json:"created_at"`
	App       *dto.AppResponse `json:"app,omitempty"`
}

// GET /api/u/test-requests — pendaftaran milik user + app-nya
func (ctl *TestRequestController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserUUID(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	regs, err := ctl.Service.ListMine(userID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]myTestRequestResponse, 0, len(regs))
	for i := range regs {
		item := myTestRequestResponse{
			ID:        regs[i].ID,
			AppID:     regs[i].AppID,
			CreatedAt: regs[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if regs[i].App != nil {
			resp := dto.FromModel(regs[i].App)
			item.App = &resp
		}
		out = append(out, item)
	}
	return helper.JsonOK(c, out)
}
