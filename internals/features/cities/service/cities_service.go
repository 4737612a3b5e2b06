package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	"unipresence_backend/internals/features/cities/dto"
	"unipresence_backend/internals/features/cities/model"
)

type CityService struct {
	DB *gorm.DB
}

func NewCityService(db *gorm.DB) *CityService {
	return &CityService{DB: db}
}

// ListCities returns every city ordered by name. Store failures are logged
// and degrade to an empty list.
func (s *CityService) ListCities(ctx context.Context) []dto.CityResponse {
	var rows []model.CityModel
	if err := s.DB.WithContext(ctx).
		Order("city_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListCities: %v", err)
		return []dto.CityResponse{}
	}
	return dto.ToCityResponseList(rows)
}

// GetCityBySlug resolves a derived slug back to a city. Slugs are not
// stored, so this scans the (small) city list for a match.
func (s *CityService) GetCityBySlug(ctx context.Context, slug string) *dto.CityResponse {
	for _, c := range s.ListCities(ctx) {
		if c.CitySlug == slug {
			city := c
			return &city
		}
	}
	return nil
}
