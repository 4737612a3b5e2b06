// file: internals/route/index.go
package routes

import (
	"log"

	routeDetails "unipresence_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	// The whole product is anonymous reads; everything hangs off one group.
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.DiscoverPublicRoutes(public, db)
}
