package dto

import (
	"unipresence_backend/internals/features/cities/model"
	helper "unipresence_backend/internals/helpers"

	"github.com/google/uuid"
)

// 🔹 Response for a city; the slug is derived from the name, never stored
type CityResponse struct {
	CityID   uuid.UUID `json:"city_id"`
	CityName string    `json:"city_name"`
	CitySlug string    `json:"city_slug"`
}

// 🔄 model → response
func ToCityResponse(m *model.CityModel) *CityResponse {
	return &CityResponse{
		CityID:   m.CityID,
		CityName: m.CityName,
		CitySlug: helper.GenerateSlug(m.CityName),
	}
}

// 🔄 list model → list response
func ToCityResponseList(models []model.CityModel) []CityResponse {
	result := make([]CityResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToCityResponse(&models[i]))
	}
	return result
}
