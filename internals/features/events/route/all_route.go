package route

import (
	"unipresence_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllEventRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	event := api.Group("/events")

	// fixed segments before the :slug catch-all
	event.Get("/", eventCtrl.GetAllEvents)
	event.Get("/trending", eventCtrl.GetTrendingEvents)
	event.Get("/this-week", eventCtrl.GetThisWeekEvents)
	event.Get("/filters", eventCtrl.GetEventFilters)
	event.Get("/id/:id", eventCtrl.GetEventByID)
	event.Get("/:slug", eventCtrl.GetEventBySlug)
	event.Get("/:slug/related", eventCtrl.GetRelatedEvents)
}
