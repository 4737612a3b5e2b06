package controller

import (
	"unipresence_backend/internals/features/cities/service"
	helper "unipresence_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CityController struct {
	Service *service.CityService
}

func NewCityController(db *gorm.DB) *CityController {
	return &CityController{Service: service.NewCityService(db)}
}

// 🟢 GET /api/public/cities
func (ctrl *CityController) GetAllCities(c *fiber.Ctx) error {
	cities := ctrl.Service.ListCities(c.UserContext())
	return helper.JsonList(c, "Cities fetched", cities)
}

// 🟢 GET /api/public/cities/:slug
func (ctrl *CityController) GetCityBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "City slug is required")
	}

	city := ctrl.Service.GetCityBySlug(c.UserContext(), slug)
	if city == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "City not found")
	}
	return helper.JsonOK(c, "City found", city)
}
