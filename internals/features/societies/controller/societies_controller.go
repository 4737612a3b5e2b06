package controller

import (
	"unipresence_backend/internals/features/societies/service"
	helper "unipresence_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocietyController struct {
	Service *service.SocietyService
}

func NewSocietyController(db *gorm.DB) *SocietyController {
	return &SocietyController{Service: service.NewSocietyService(db)}
}

// 🟢 GET /api/public/societies
func (ctrl *SocietyController) GetAllSocieties(c *fiber.Ctx) error {
	societies := ctrl.Service.ListSocieties(c.UserContext())
	return helper.JsonList(c, "Societies fetched", societies)
}

// 🟢 GET /api/public/societies/by-university/:university_id
func (ctrl *SocietyController) GetSocietiesByUniversity(c *fiber.Ctx) error {
	universityID, err := uuid.Parse(c.Params("university_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid university id")
	}

	societies := ctrl.Service.ListSocietiesByUniversity(c.UserContext(), universityID)
	return helper.JsonList(c, "Societies fetched", societies)
}

// 🟢 GET /api/public/societies/:handle
func (ctrl *SocietyController) GetSocietyByHandle(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if handle == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Society handle is required")
	}

	society := ctrl.Service.GetSocietyByHandle(c.UserContext(), handle)
	if society == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Society not found")
	}
	return helper.JsonOK(c, "Society found", society)
}
