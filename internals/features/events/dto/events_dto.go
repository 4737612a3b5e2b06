package dto

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"unipresence_backend/internals/constants"
	"unipresence_backend/internals/features/events/model"
	societyModel "unipresence_backend/internals/features/societies/model"
	helper "unipresence_backend/internals/helpers"
)

type EventScheduleResponse struct {
	EventScheduleTime     time.Time `json:"event_schedule_time"`
	EventScheduleIsEnd    bool      `json:"event_schedule_is_end"`
	EventScheduleIndex    int       `json:"event_schedule_index"`
	EventScheduleLocation string    `json:"event_schedule_location"`
}

// 🔹 Flat display entity for event cards and detail pages. Every join is
// already resolved; renderers never touch raw rows.
type EventResponse struct {
	EventID    uuid.UUID `json:"event_id"`
	EventSlug  string    `json:"event_slug"`
	EventTitle string    `json:"event_title"`
	EventDesc  string    `json:"event_description"`

	EventStartTime  time.Time  `json:"event_start_time"`
	EventEndTime    *time.Time `json:"event_end_time,omitempty"`
	EventStartLabel string     `json:"event_start_label"`

	EventCity        string `json:"event_city"`
	EventUniversity  string `json:"event_university"`
	EventSocietyName string `json:"event_society_name"`

	EventLocationName string                  `json:"event_location_name"`
	EventLocationURL  string                  `json:"event_location_url"`
	EventSchedule     []EventScheduleResponse `json:"event_schedule"`

	EventImageURL    string   `json:"event_image_url"`
	EventExternalURL string   `json:"event_external_url"`
	EventTags        []string `json:"event_tags"`

	EventInterestedCount int `json:"event_interested_count"`
	EventSavedCount      int `json:"event_saved_count"`

	EventPriceLabel string    `json:"event_price_label"`
	EventCreatedAt  time.Time `json:"event_created_at"`
}

// FormatPriceLabel: free wins over any price string; a paid event without a
// price gets the fallback sentinel, never an empty label.
func FormatPriceLabel(isFree bool, price *string) string {
	if isFree {
		return constants.PriceLabelFree
	}
	if price != nil && *price != "" {
		return *price
	}
	return constants.PriceLabelFallback
}

var categoryDisplayNames = map[string]string{
	"workshop": "Workshop",
	"social":   "Social",
	"academic": "Academic",
	"career":   "Career",
	"sports":   "Sports",
	"arts":     "Arts",
	"trip":     "Trip",
}

// CategoryDisplayName maps a raw category key to its canonical display
// string; unknown keys just get their first rune upper-cased.
func CategoryDisplayName(name string) string {
	if display, ok := categoryDisplayNames[strings.ToLower(name)]; ok {
		return display
	}
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// primaryImageURL picks the gallery entry with the lowest index (NULL → 0)
// and resolves its stored URL. Missing rows or a broken post_images link
// yield "", never an error.
func primaryImageURL(images []model.EventImageModel) string {
	if len(images) == 0 {
		return ""
	}
	sorted := append([]model.EventImageModel(nil), images...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return imageIndex(sorted[i]) < imageIndex(sorted[j])
	})
	if sorted[0].PostImage == nil {
		return ""
	}
	return sorted[0].PostImage.PostImageS3URL
}

func imageIndex(img model.EventImageModel) int {
	if img.EventImageIndex == nil {
		return 0
	}
	return *img.EventImageIndex
}

// 🔄 model → response. Total on any row shape: all-null joins resolve to
// the sentinels in internals/constants.
func ToEventResponse(m *model.EventModel) *EventResponse {
	society := firstSociety(m.EventSocieties)

	cityName := constants.DefaultCityName
	universityName := constants.DefaultUniversityName
	societyName := constants.DefaultSocietyName

	if society != nil {
		societyName = society.SocietyName
		if society.University != nil {
			universityName = society.University.UniversityName
			if society.University.City != nil {
				cityName = society.University.City.CityName
			}
		}
	}

	tags := []string{constants.DefaultEventTag}
	if m.Category != nil {
		tags = []string{CategoryDisplayName(m.Category.CategoryName)}
	}

	// Source post is the fallback only when no registration URL is set at
	// all. A present-but-empty registration URL stays empty.
	externalURL := ""
	if m.EventRegistrationURL != nil {
		externalURL = *m.EventRegistrationURL
	} else if m.EventSourcePostURL != nil {
		externalURL = *m.EventSourcePostURL
	}

	locationURL := ""
	if m.EventLocationURL != nil {
		locationURL = *m.EventLocationURL
	}

	return &EventResponse{
		EventID:    m.EventID,
		EventSlug:  helper.GenerateSlug(m.EventTitle),
		EventTitle: m.EventTitle,
		EventDesc:  m.EventDescription,

		EventStartTime:  m.EventDate,
		EventEndTime:    m.EventEnd,
		EventStartLabel: helper.FormatDateTime(m.EventDate),

		EventCity:        cityName,
		EventUniversity:  universityName,
		EventSocietyName: societyName,

		EventLocationName: m.EventLocation,
		EventLocationURL:  locationURL,
		EventSchedule:     toScheduleResponses(m.EventSchedules),

		EventImageURL:    primaryImageURL(m.EventImages),
		EventExternalURL: externalURL,
		EventTags:        tags,

		EventInterestedCount: m.EventLikes,
		EventSavedCount:      m.EventLikes * 3 / 10,

		EventPriceLabel: FormatPriceLabel(m.EventIsFree, m.EventPrice),
		EventCreatedAt:  m.EventCreatedAt,
	}
}

func firstSociety(entries []model.EventSocietyModel) *societyModel.SocietyModel {
	if len(entries) == 0 {
		return nil
	}
	return entries[0].Society
}

func toScheduleResponses(schedules []model.EventScheduleModel) []EventScheduleResponse {
	sorted := append([]model.EventScheduleModel(nil), schedules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EventScheduleIndex < sorted[j].EventScheduleIndex
	})

	result := make([]EventScheduleResponse, 0, len(sorted))
	for _, s := range sorted {
		location := ""
		if s.EventScheduleLocation != nil {
			location = *s.EventScheduleLocation
		}
		result = append(result, EventScheduleResponse{
			EventScheduleTime:     s.EventScheduleTime,
			EventScheduleIsEnd:    s.EventScheduleIsEnd,
			EventScheduleIndex:    s.EventScheduleIndex,
			EventScheduleLocation: location,
		})
	}
	return result
}

// 🔄 list model → list response
func ToEventResponseList(models []model.EventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEventResponse(&models[i]))
	}
	return result
}
