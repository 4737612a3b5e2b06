package route

import (
	"unipresence_backend/internals/features/categories/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllCategoryRoutes(api fiber.Router, db *gorm.DB) {
	categoryCtrl := controller.NewCategoryController(db)
	category := api.Group("/categories")
	category.Get("/", categoryCtrl.GetAllCategories)
}
