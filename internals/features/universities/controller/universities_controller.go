package controller

import (
	"unipresence_backend/internals/features/universities/service"
	helper "unipresence_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UniversityController struct {
	Service *service.UniversityService
}

func NewUniversityController(db *gorm.DB) *UniversityController {
	return &UniversityController{Service: service.NewUniversityService(db)}
}

// 🟢 GET /api/public/universities
func (ctrl *UniversityController) GetAllUniversities(c *fiber.Ctx) error {
	universities := ctrl.Service.ListUniversities(c.UserContext())
	return helper.JsonList(c, "Universities fetched", universities)
}

// 🟢 GET /api/public/universities/:slug (short name or derived name slug)
func (ctrl *UniversityController) GetUniversityBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "University slug is required")
	}

	uni := ctrl.Service.GetUniversityBySlug(c.UserContext(), slug)
	if uni == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "University not found")
	}
	return helper.JsonOK(c, "University found", uni)
}
