package route

import (
	"unipresence_backend/internals/features/cities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllCityRoutes(api fiber.Router, db *gorm.DB) {
	cityCtrl := controller.NewCityController(db)
	city := api.Group("/cities")
	city.Get("/", cityCtrl.GetAllCities)
	city.Get("/:slug", cityCtrl.GetCityBySlug)
}
