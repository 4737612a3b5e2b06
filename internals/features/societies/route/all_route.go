package route

import (
	"unipresence_backend/internals/features/societies/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllSocietyRoutes(api fiber.Router, db *gorm.DB) {
	societyCtrl := controller.NewSocietyController(db)
	society := api.Group("/societies")
	society.Get("/", societyCtrl.GetAllSocieties)
	society.Get("/by-university/:university_id", societyCtrl.GetSocietiesByUniversity)
	society.Get("/:handle", societyCtrl.GetSocietyByHandle)
}
