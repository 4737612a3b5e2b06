package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"unipresence_backend/internals/features/events/dto"
)

func mkEvent(title string, start time.Time, likes int) dto.EventResponse {
	return dto.EventResponse{
		EventID:              uuid.New(),
		EventTitle:           title,
		EventStartTime:       start,
		EventInterestedCount: likes,
		EventCity:            "Manchester",
		EventUniversity:      "University of Manchester",
		EventSocietyName:     "Some Society",
		EventTags:            []string{"Social"},
	}
}

func titles(events []dto.EventResponse) []string {
	out := make([]string, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.EventTitle)
	}
	return out
}

func TestSortEvents(t *testing.T) {
	aiNight := mkEvent("AI Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 80)
	boardGames := mkEvent("Board Games", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 10)
	events := []dto.EventResponse{aiNight, boardGames}

	if got := titles(SortEvents(events, SortSoonest)); !reflect.DeepEqual(got, []string{"Board Games", "AI Night"}) {
		t.Errorf("soonest order = %v", got)
	}
	if got := titles(SortEvents(events, SortTrending)); !reflect.DeepEqual(got, []string{"AI Night", "Board Games"}) {
		t.Errorf("trending order = %v", got)
	}

	// input untouched
	if got := titles(events); !reflect.DeepEqual(got, []string{"AI Night", "Board Games"}) {
		t.Errorf("input mutated: %v", got)
	}
}

func TestSortEventsNewest(t *testing.T) {
	older := mkEvent("Older", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	older.EventCreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := mkEvent("Newer", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 0)
	newer.EventCreatedAt = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	got := titles(SortEvents([]dto.EventResponse{older, newer}, SortNewest))
	if !reflect.DeepEqual(got, []string{"Newer", "Older"}) {
		t.Errorf("newest order = %v", got)
	}
}

func TestSortEventsStableAndIdempotent(t *testing.T) {
	// all equal likes: trending sort must keep input order
	a := mkEvent("A", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 5)
	b := mkEvent("B", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 5)
	c := mkEvent("C", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), 5)
	events := []dto.EventResponse{a, b, c}

	once := SortEvents(events, SortTrending)
	if got := titles(once); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("tie order not stable: %v", got)
	}

	twice := SortEvents(once, SortTrending)
	if !reflect.DeepEqual(titles(once), titles(twice)) {
		t.Errorf("sort not idempotent: %v vs %v", titles(once), titles(twice))
	}
	if len(once) != len(events) {
		t.Errorf("sort changed length: %d vs %d", len(once), len(events))
	}
}

func TestFilterEventsQuery(t *testing.T) {
	aiNight := mkEvent("AI Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 80)
	boardGames := mkEvent("Board Games", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 10)
	events := []dto.EventResponse{aiNight, boardGames}

	for _, q := range []string{"board", "BOARD", "  board "} {
		got := FilterEvents(events, q, "", "", "")
		if len(got) != 1 || got[0].EventTitle != "Board Games" {
			t.Errorf("FilterEvents(%q) = %v", q, titles(got))
		}
	}
}

func TestFilterEventsMatchesAnyField(t *testing.T) {
	ev := mkEvent("Quiz", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	ev.EventSocietyName = "Real Ale Society"
	ev.EventDesc = "Bring your own buzzer"
	ev.EventTags = []string{"Social", "Trivia"}
	events := []dto.EventResponse{ev}

	for _, q := range []string{"real ale", "manchester", "buzzer", "trivia"} {
		if got := FilterEvents(events, q, "", "", ""); len(got) != 1 {
			t.Errorf("query %q should match via a non-title field", q)
		}
	}
	if got := FilterEvents(events, "salsa", "", "", ""); len(got) != 0 {
		t.Errorf("query with no field match returned %v", titles(got))
	}
}

func TestFilterEventsNoFiltersIsIdentity(t *testing.T) {
	events := []dto.EventResponse{
		mkEvent("AI Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 80),
		mkEvent("Board Games", time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 10),
	}

	got := FilterEvents(events, "", "", "", "")
	if !reflect.DeepEqual(titles(got), titles(events)) {
		t.Errorf("identity filter changed content/order: %v", titles(got))
	}
}

func TestFilterEventsAndedFilters(t *testing.T) {
	inCity := mkEvent("AI Night", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 80)
	otherCity := mkEvent("AI Mixer", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 5)
	otherCity.EventCity = "Leeds"
	events := []dto.EventResponse{inCity, otherCity}

	got := FilterEvents(events, "ai", "", "manchester", "")
	if len(got) != 1 || got[0].EventTitle != "AI Night" {
		t.Errorf("ANDed query+city = %v", titles(got))
	}

	// tag filter is exact membership, not case-folded
	if got := FilterEvents(events, "", "social", "", ""); len(got) != 0 {
		t.Errorf("lowercase tag should not match canonical %q tag", "Social")
	}
	if got := FilterEvents(events, "", "Social", "", ""); len(got) != 2 {
		t.Errorf("exact tag match = %v", titles(got))
	}
}

func TestTrendingEvents(t *testing.T) {
	var events []dto.EventResponse
	for i, likes := range []int{3, 50, 12, 9, 41, 7, 28} {
		events = append(events, mkEvent(string(rune('A'+i)), time.Date(2025, 3, 1+i, 0, 0, 0, 0, time.UTC), likes))
	}

	got := TrendingEvents(events, 0) // default limit 6
	if len(got) != 6 {
		t.Fatalf("default limit = %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].EventInterestedCount > got[i-1].EventInterestedCount {
			t.Errorf("not descending at %d: %v", i, got)
		}
	}

	if got := TrendingEvents(events, 2); len(got) != 2 || got[0].EventInterestedCount != 50 {
		t.Errorf("explicit limit = %v", got)
	}
}

func TestRelatedEventsNeverIncludesSelf(t *testing.T) {
	current := mkEvent("Current", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	sameCity := mkEvent("Same City", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 0)
	sharedTag := mkEvent("Shared Tag", time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), 0)
	sharedTag.EventCity = "Leeds"
	unrelated := mkEvent("Unrelated", time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), 0)
	unrelated.EventCity = "Leeds"
	unrelated.EventTags = []string{"Sports"}

	all := []dto.EventResponse{current, sameCity, sharedTag, unrelated}

	got := RelatedEvents(current, all, 0)
	for _, ev := range got {
		if ev.EventID == current.EventID {
			t.Fatal("related events contain the event itself")
		}
	}
	if !reflect.DeepEqual(titles(got), []string{"Same City", "Shared Tag"}) {
		t.Errorf("related = %v", titles(got))
	}
}

func TestRelatedEventsHonorsLimit(t *testing.T) {
	current := mkEvent("Current", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 0)
	var all []dto.EventResponse
	for i := 0; i < 10; i++ {
		all = append(all, mkEvent(string(rune('A'+i)), time.Date(2025, 3, 2+i, 0, 0, 0, 0, time.UTC), 0))
	}

	if got := RelatedEvents(current, all, 0); len(got) != 4 {
		t.Errorf("default limit = %d, want 4", len(got))
	}
	if got := RelatedEvents(current, all, 2); !reflect.DeepEqual(titles(got), []string{"A", "B"}) {
		t.Errorf("first matches in input order = %v", titles(got))
	}
}

func TestThisWeekEvents(t *testing.T) {
	now := time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC) // week of Sun 15 Jun

	inWeek := mkEvent("In Week", time.Date(2025, 6, 20, 19, 0, 0, 0, time.UTC), 0)
	nextWeek := mkEvent("Next Week", time.Date(2025, 6, 23, 19, 0, 0, 0, time.UTC), 0)

	got := ThisWeekEvents([]dto.EventResponse{inWeek, nextWeek}, now)
	if !reflect.DeepEqual(titles(got), []string{"In Week"}) {
		t.Errorf("this week = %v", titles(got))
	}
}
