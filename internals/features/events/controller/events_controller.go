package controller

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"unipresence_backend/internals/features/events/service"
	helper "unipresence_backend/internals/helpers"
)

type EventController struct {
	Service  *service.EventService
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		Service:  service.NewEventService(db),
		Validate: validator.New(),
	}
}

// Caps for the ?limit= knob, per endpoint. Zero default means "no cap
// requested" and the service decides.
const (
	maxEventsPerPage   = 200
	maxTrendingPerPage = 50
)

type listEventsQuery struct {
	Query       string `query:"q"`
	Tag         string `query:"tag"`
	Category    string `query:"category"`
	City        string `query:"city"`
	University  string `query:"university"`
	Sort        string `query:"sort" validate:"omitempty,oneof=soonest trending newest"`
	IncludePast bool   `query:"include_past"`
}

// 🟢 GET /api/public/events
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	var req listEventsQuery
	if err := c.QueryParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	paging := helper.ResolvePaging(c, 0, maxEventsPerPage)
	events := ctrl.Service.ListEvents(c.UserContext(), service.ListEventsOptions{
		Category:    req.Category,
		City:        req.City,
		University:  req.University,
		IncludePast: req.IncludePast,
		Limit:       paging.Limit,
	})

	// Text search and tag pills refine the fetched list in memory.
	events = service.FilterEvents(events, req.Query, req.Tag, "", "")
	if req.Sort != "" {
		events = service.SortEvents(events, service.SortMode(req.Sort))
	}

	return helper.JsonList(c, "Events fetched", events)
}

// 🟢 GET /api/public/events/trending
func (ctrl *EventController) GetTrendingEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 0, maxTrendingPerPage)
	events := ctrl.Service.ListTrending(c.UserContext(), paging.Limit)
	return helper.JsonList(c, "Trending events fetched", events)
}

// 🟢 GET /api/public/events/this-week
func (ctrl *EventController) GetThisWeekEvents(c *fiber.Ctx) error {
	events := ctrl.Service.ListEvents(c.UserContext(), service.ListEventsOptions{})
	events = service.ThisWeekEvents(events, ctrl.Service.Now())
	return helper.JsonList(c, "This week's events fetched", events)
}

// 🟢 GET /api/public/events/filters
// The three distinct-value lists are independent reads, fetched in
// parallel and composed into one payload for the filter pills.
func (ctrl *EventController) GetEventFilters(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		wg           sync.WaitGroup
		cities       []string
		tags         []string
		universities []string
	)

	wg.Add(3)
	go func() { defer wg.Done(); cities = ctrl.Service.ListDistinctCities(ctx) }()
	go func() { defer wg.Done(); tags = ctrl.Service.ListDistinctTags(ctx) }()
	go func() { defer wg.Done(); universities = ctrl.Service.ListDistinctUniversities(ctx) }()
	wg.Wait()

	return helper.JsonOK(c, "Event filters fetched", fiber.Map{
		"cities":       cities,
		"tags":         tags,
		"universities": universities,
	})
}

// 🟢 GET /api/public/events/id/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	event := ctrl.Service.GetEventByID(c.UserContext(), id)
	if event == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonOK(c, "Event found", event)
}

// 🟢 GET /api/public/events/:slug
func (ctrl *EventController) GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event slug is required")
	}

	event := ctrl.Service.GetEventBySlug(c.UserContext(), slug)
	if event == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonOK(c, "Event found", event)
}

// 🟢 GET /api/public/events/:slug/related
func (ctrl *EventController) GetRelatedEvents(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event slug is required")
	}

	ctx := c.UserContext()
	current := ctrl.Service.GetEventBySlug(ctx, slug)
	if current == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	all := ctrl.Service.ListEvents(ctx, service.ListEventsOptions{})
	related := service.RelatedEvents(*current, all, c.QueryInt("limit", 0))
	return helper.JsonList(c, "Related events fetched", related)
}
