package constants

// Fallback values used by the DTO transformers whenever an optional join
// (event → society → university → city, category, images) comes back null.
// Every sentinel the API can emit lives here, nowhere else.
const (
	DefaultCityName       = "Unknown"
	DefaultUniversityName = "University of Manchester"
	DefaultSocietyName    = "Unknown Society"

	// Fallback for a society whose university join is missing: distinct
	// from the event-card default above.
	DefaultSocietyUniversity = "Unknown University"
	DefaultEventTag       = "General"

	PriceLabelFree     = "Free"
	PriceLabelFallback = "See event page"
)
