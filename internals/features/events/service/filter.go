package service

import (
	"sort"
	"strings"
	"time"

	"unipresence_backend/internals/features/events/dto"
	helper "unipresence_backend/internals/helpers"
)

// Pure in-memory refinement over already-fetched event lists. Nothing here
// touches the DB or mutates its input, so every function is safe to call
// from any number of concurrent handlers.

type SortMode string

const (
	SortSoonest  SortMode = "soonest"
	SortTrending SortMode = "trending"
	SortNewest   SortMode = "newest"
)

const defaultRelatedLimit = 4

// SortEvents returns a new slice sorted by the given mode. Ties keep their
// input order (stable sort); an unknown mode returns an unsorted copy.
func SortEvents(events []dto.EventResponse, mode SortMode) []dto.EventResponse {
	sorted := append([]dto.EventResponse(nil), events...)

	switch mode {
	case SortSoonest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EventStartTime.Before(sorted[j].EventStartTime)
		})
	case SortTrending:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EventInterestedCount > sorted[j].EventInterestedCount
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EventCreatedAt.After(sorted[j].EventCreatedAt)
		})
	}

	return sorted
}

// FilterEvents ANDs every active filter. The text query is trimmed and
// substring-matched case-insensitively against title, society, university,
// city, tags and description; the tag filter is exact membership; city and
// university are case-insensitive equality.
func FilterEvents(events []dto.EventResponse, query, tag, city, university string) []dto.EventResponse {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		if q != "" && !matchesQuery(ev, q) {
			continue
		}
		if tag != "" && !hasTag(ev.EventTags, tag) {
			continue
		}
		if city != "" && !strings.EqualFold(ev.EventCity, city) {
			continue
		}
		if university != "" && !strings.EqualFold(ev.EventUniversity, university) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func matchesQuery(ev dto.EventResponse, q string) bool {
	if strings.Contains(strings.ToLower(ev.EventTitle), q) ||
		strings.Contains(strings.ToLower(ev.EventSocietyName), q) ||
		strings.Contains(strings.ToLower(ev.EventUniversity), q) ||
		strings.Contains(strings.ToLower(ev.EventCity), q) ||
		strings.Contains(strings.ToLower(ev.EventDesc), q) {
		return true
	}
	for _, t := range ev.EventTags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// TrendingEvents sorts by interest count descending and truncates.
// Purely in-memory: independent of EventService.ListTrending.
func TrendingEvents(events []dto.EventResponse, limit int) []dto.EventResponse {
	if limit <= 0 {
		limit = defaultTrendingLimit
	}
	sorted := SortEvents(events, SortTrending)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// RelatedEvents keeps events sharing the current event's city or at least
// one tag, excluding the event itself, first limit matches in input order.
func RelatedEvents(current dto.EventResponse, all []dto.EventResponse, limit int) []dto.EventResponse {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	out := make([]dto.EventResponse, 0, limit)
	for _, ev := range all {
		if ev.EventID == current.EventID {
			continue
		}
		if ev.EventCity != current.EventCity && !sharesTag(ev.EventTags, current.EventTags) {
			continue
		}
		out = append(out, ev)
		if len(out) == limit {
			break
		}
	}
	return out
}

func sharesTag(a, b []string) bool {
	for _, t := range a {
		for _, u := range b {
			if t == u {
				return true
			}
		}
	}
	return false
}

// ThisWeekEvents keeps events starting inside the current Sunday-based week.
func ThisWeekEvents(events []dto.EventResponse, now time.Time) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		if helper.IsThisWeek(ev.EventStartTime, now) {
			out = append(out, ev)
		}
	}
	return out
}
