package details

import (
	CategoryRoutes "unipresence_backend/internals/features/categories/route"
	CityRoutes "unipresence_backend/internals/features/cities/route"
	EventRoutes "unipresence_backend/internals/features/events/route"
	SocietyRoutes "unipresence_backend/internals/features/societies/route"
	UniversityRoutes "unipresence_backend/internals/features/universities/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ✅ Public, token-free routes
// Example: /api/public/events/trending
func DiscoverPublicRoutes(api fiber.Router, db *gorm.DB) {
	EventRoutes.AllEventRoutes(api, db)
	SocietyRoutes.AllSocietyRoutes(api, db)
	UniversityRoutes.AllUniversityRoutes(api, db)
	CityRoutes.AllCityRoutes(api, db)
	CategoryRoutes.AllCategoryRoutes(api, db)
}
