package route

import (
	"unipresence_backend/internals/features/universities/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllUniversityRoutes(api fiber.Router, db *gorm.DB) {
	uniCtrl := controller.NewUniversityController(db)
	uni := api.Group("/universities")
	uni.Get("/", uniCtrl.GetAllUniversities)
	uni.Get("/:slug", uniCtrl.GetUniversityBySlug)
}
