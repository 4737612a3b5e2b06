package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unipresence_backend/internals/features/events/dto"
	"unipresence_backend/internals/features/events/model"
)

// Over-fetch for trending: popularity order and the upcoming cutoff are
// independent axes, so a page of popular rows can thin out after filtering.
const (
	trendingFetchMultiplier = 4
	trendingFetchFloor      = 24
	defaultTrendingLimit    = 6
)

type EventService struct {
	DB *gorm.DB

	// Now is swappable so the local-midnight cutoff can be pinned in tests.
	Now func() time.Time
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db, Now: time.Now}
}

type ListEventsOptions struct {
	// Case-insensitive exact matches against derived entity fields, applied
	// after the row transform (they depend on joins, not columns).
	Category   string
	City       string
	University string

	// Zero value keeps the default: upcoming events only.
	IncludePast bool

	Limit int
}

func (s *EventService) baseQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Preload("Category").
		Preload("EventSocieties.Society.University.City").
		Preload("EventImages.PostImage").
		Preload("EventSchedules")
}

// ListEvents fetches events ordered by start time ascending. Store failures
// are logged and degrade to an empty list: callers render an empty state,
// never an error page.
func (s *EventService) ListEvents(ctx context.Context, opts ListEventsOptions) []dto.EventResponse {
	q := s.baseQuery(ctx).Order("event_date ASC")

	if !opts.IncludePast {
		q = q.Where("event_date >= ?", StartOfToday(s.Now()))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	var rows []model.EventModel
	if err := q.Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListEvents: %v", err)
		return []dto.EventResponse{}
	}

	return matchOptions(dto.ToEventResponseList(rows), opts)
}

// GetEventByID returns nil for not-found and for any other fetch failure
// alike: the caller only sees "no event".
func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) *dto.EventResponse {
	var row model.EventModel
	if err := s.baseQuery(ctx).
		Where("event_id = ?", id).
		First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] GetEventByID %s: %v", id, err)
		}
		return nil
	}
	return dto.ToEventResponse(&row)
}

// GetEventBySlug scans the full candidate set for a derived-slug match.
// Slugs are not stored and not unique: the first match in fetch order
// (event_date ascending) wins.
func (s *EventService) GetEventBySlug(ctx context.Context, slug string) *dto.EventResponse {
	return findBySlug(s.ListEvents(ctx, ListEventsOptions{IncludePast: true}), slug)
}

// ListTrending returns up to limit upcoming events by interest count,
// descending. May return fewer when the upcoming trending set is small.
func (s *EventService) ListTrending(ctx context.Context, limit int) []dto.EventResponse {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}

	var rows []model.EventModel
	if err := s.baseQuery(ctx).
		Order("event_likes DESC").
		Limit(trendingFetchLimit(limit)).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListTrending: %v", err)
		return []dto.EventResponse{}
	}

	upcoming := keepUpcoming(dto.ToEventResponseList(rows), StartOfToday(s.Now()))
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ListDistinctCities collects the unique resolved city names across the
// full event set, alphabetically sorted.
func (s *EventService) ListDistinctCities(ctx context.Context) []string {
	return s.collectDistinct(ctx, func(ev dto.EventResponse) []string {
		return []string{ev.EventCity}
	})
}

// ListDistinctTags collects the unique tags across the full event set.
func (s *EventService) ListDistinctTags(ctx context.Context) []string {
	return s.collectDistinct(ctx, func(ev dto.EventResponse) []string {
		return ev.EventTags
	})
}

// ListDistinctUniversities collects the unique resolved university names
// across the full event set.
func (s *EventService) ListDistinctUniversities(ctx context.Context) []string {
	return s.collectDistinct(ctx, func(ev dto.EventResponse) []string {
		return []string{ev.EventUniversity}
	})
}

func (s *EventService) collectDistinct(ctx context.Context, pick func(dto.EventResponse) []string) []string {
	events := s.ListEvents(ctx, ListEventsOptions{IncludePast: true})
	return distinctSorted(events, pick)
}

// ---- pure pieces, kept out of the query path so they can be tested ----

// StartOfToday is the upcoming cutoff, local midnight rather than "now",
// so an event earlier today still counts as upcoming.
// findBySlug resolves a derived slug against an already-transformed list.
// Duplicate titles produce duplicate slugs, so position in the input
// decides: the earliest match is returned.
func findBySlug(events []dto.EventResponse, slug string) *dto.EventResponse {
	for i := range events {
		if events[i].EventSlug == slug {
			return &events[i]
		}
	}
	return nil
}

// trendingFetchLimit widens the popularity page before the upcoming
// filter thins it out.
func trendingFetchLimit(limit int) int {
	fetchLimit := limit * trendingFetchMultiplier
	if fetchLimit < trendingFetchFloor {
		fetchLimit = trendingFetchFloor
	}
	return fetchLimit
}

func StartOfToday(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func keepUpcoming(events []dto.EventResponse, cutoff time.Time) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		if !ev.EventStartTime.Before(cutoff) {
			out = append(out, ev)
		}
	}
	return out
}

func matchOptions(events []dto.EventResponse, opts ListEventsOptions) []dto.EventResponse {
	if opts.Category == "" && opts.City == "" && opts.University == "" {
		return events
	}
	out := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		if opts.Category != "" && !hasTagFold(ev.EventTags, opts.Category) {
			continue
		}
		if opts.City != "" && !strings.EqualFold(ev.EventCity, opts.City) {
			continue
		}
		if opts.University != "" && !strings.EqualFold(ev.EventUniversity, opts.University) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func hasTagFold(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func distinctSorted(events []dto.EventResponse, pick func(dto.EventResponse) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(events))
	for _, ev := range events {
		for _, v := range pick(ev) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
