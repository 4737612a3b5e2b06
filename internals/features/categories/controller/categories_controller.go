package controller

import (
	"unipresence_backend/internals/features/categories/service"
	helper "unipresence_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryController struct {
	Service *service.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{Service: service.NewCategoryService(db)}
}

// 🟢 GET /api/public/categories
func (ctrl *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	categories := ctrl.Service.ListCategories(c.UserContext())
	return helper.JsonList(c, "Categories fetched", categories)
}
