package service

import (
	"reflect"
	"testing"
	"time"

	"unipresence_backend/internals/features/events/dto"
)

func TestStartOfTodayBoundary(t *testing.T) {
	// "today" pinned to 2025-06-15: an event late on the 14th is out, an
	// event in the small hours of the 15th is still upcoming.
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	cutoff := StartOfToday(now)

	if want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC); !cutoff.Equal(want) {
		t.Fatalf("StartOfToday = %v, want %v", cutoff, want)
	}

	lateYesterday := mkEvent("Late Yesterday", time.Date(2025, 6, 14, 23, 0, 0, 0, time.UTC), 0)
	earlyToday := mkEvent("Early Today", time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC), 0)

	got := keepUpcoming([]dto.EventResponse{lateYesterday, earlyToday}, cutoff)
	if !reflect.DeepEqual(titles(got), []string{"Early Today"}) {
		t.Errorf("upcoming = %v", titles(got))
	}
}

func TestStartOfTodayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("BST", 3600)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, loc)

	cutoff := StartOfToday(now)
	if cutoff.Location() != loc {
		t.Errorf("cutoff location = %v, want caller's zone", cutoff.Location())
	}
	if cutoff.Hour() != 0 || cutoff.Day() != 15 {
		t.Errorf("cutoff = %v, want local midnight of the 15th", cutoff)
	}
}

func TestMatchOptions(t *testing.T) {
	manchester := mkEvent("AI Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	leeds := mkEvent("Board Games", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 0)
	leeds.EventCity = "Leeds"
	leeds.EventUniversity = "University of Leeds"
	leeds.EventTags = []string{"Sports"}
	events := []dto.EventResponse{manchester, leeds}

	cases := []struct {
		name string
		opts ListEventsOptions
		want []string
	}{
		{"no filters pass through", ListEventsOptions{}, []string{"AI Night", "Board Games"}},
		{"city case-insensitive", ListEventsOptions{City: "leeds"}, []string{"Board Games"}},
		{"university case-insensitive", ListEventsOptions{University: "university of manchester"}, []string{"AI Night"}},
		{"category against tags", ListEventsOptions{Category: "sports"}, []string{"Board Games"}},
		{"all filters ANDed", ListEventsOptions{City: "Leeds", Category: "Social"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := titles(matchOptions(events, tc.opts))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("matchOptions = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKeepUpcomingTruncationOrder(t *testing.T) {
	// trending fetch order (likes desc) must survive the upcoming filter
	cutoff := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	top := mkEvent("Top", time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), 90)
	gone := mkEvent("Gone", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 70)
	third := mkEvent("Third", time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), 40)

	got := keepUpcoming([]dto.EventResponse{top, gone, third}, cutoff)
	if !reflect.DeepEqual(titles(got), []string{"Top", "Third"}) {
		t.Errorf("upcoming trending = %v", titles(got))
	}
}

func TestDistinctSorted(t *testing.T) {
	a := mkEvent("A", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	b := mkEvent("B", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 0)
	b.EventCity = "Leeds"
	c := mkEvent("C", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), 0)
	c.EventTags = []string{"Sports", "Social"}
	events := []dto.EventResponse{a, b, c}

	cities := distinctSorted(events, func(ev dto.EventResponse) []string { return []string{ev.EventCity} })
	if !reflect.DeepEqual(cities, []string{"Leeds", "Manchester"}) {
		t.Errorf("cities = %v", cities)
	}

	tags := distinctSorted(events, func(ev dto.EventResponse) []string { return ev.EventTags })
	if !reflect.DeepEqual(tags, []string{"Social", "Sports"}) {
		t.Errorf("tags = %v", tags)
	}

	// dedup is case-sensitive: distinct spellings both survive
	d := mkEvent("D", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), 0)
	d.EventCity = "manchester"
	cities = distinctSorted(append(events, d), func(ev dto.EventResponse) []string { return []string{ev.EventCity} })
	if !reflect.DeepEqual(cities, []string{"Leeds", "Manchester", "manchester"}) {
		t.Errorf("case-sensitive dedup = %v", cities)
	}
}

func TestFindBySlug(t *testing.T) {
	first := mkEvent("AI Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	second := mkEvent("AI Night", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 0)
	first.EventSlug = "ai-night"
	second.EventSlug = "ai-night"
	boardGames := mkEvent("Board Games", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), 0)
	boardGames.EventSlug = "board-games"
	events := []dto.EventResponse{first, second, boardGames}

	// Slugs are not unique: when two titles collide, the earliest event
	// in fetch order is the one a shared link resolves to.
	got := findBySlug(events, "ai-night")
	if got == nil || got.EventID != first.EventID {
		t.Errorf("colliding slug should resolve to the earliest event in input order")
	}

	if got := findBySlug(events, "board-games"); got == nil || got.EventID != boardGames.EventID {
		t.Errorf("unique slug resolved wrong event")
	}
	if findBySlug(events, "poetry-slam") != nil {
		t.Errorf("unknown slug should resolve to nil")
	}
}

func TestTrendingFetchLimit(t *testing.T) {
	cases := []struct{ limit, want int }{
		{1, 24},
		{6, 24},
		{7, 28},
		{10, 40},
	}
	for _, tc := range cases {
		if got := trendingFetchLimit(tc.limit); got != tc.want {
			t.Errorf("trendingFetchLimit(%d) = %d, want %d", tc.limit, got, tc.want)
		}
	}
}
