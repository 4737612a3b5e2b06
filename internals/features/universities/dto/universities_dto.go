package dto

import (
	"unipresence_backend/internals/features/universities/model"

	"github.com/google/uuid"
)

// UniversityCityName stays a pointer: a university without a city link
// renders as null, not as a sentinel (unlike the event transform).
type UniversityResponse struct {
	UniversityID        uuid.UUID `json:"university_id"`
	UniversityName      string    `json:"university_name"`
	UniversityShortName string    `json:"university_short_name"`
	UniversityCityName  *string   `json:"university_city_name"`

	UniversityDescription      string `json:"university_description"`
	UniversityBuildingImageURL string `json:"university_building_image_url"`
	UniversityLogoURL          string `json:"university_logo_url"`
}

func ToUniversityResponse(m *model.UniversityModel) *UniversityResponse {
	var cityName *string
	if m.City != nil {
		cityName = &m.City.CityName
	}
	return &UniversityResponse{
		UniversityID:               m.UniversityID,
		UniversityName:             m.UniversityName,
		UniversityShortName:        m.UniversityShortName,
		UniversityCityName:         cityName,
		UniversityDescription:      deref(m.UniversityDescription),
		UniversityBuildingImageURL: deref(m.UniversityBuildingImageURL),
		UniversityLogoURL:          deref(m.UniversityLogoURL),
	}
}

func ToUniversityResponseList(models []model.UniversityModel) []UniversityResponse {
	result := make([]UniversityResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToUniversityResponse(&models[i]))
	}
	return result
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
