package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"unipresence_backend/internals/features/universities/dto"
	"unipresence_backend/internals/features/universities/model"
	helper "unipresence_backend/internals/helpers"
)

type UniversityService struct {
	DB *gorm.DB
}

func NewUniversityService(db *gorm.DB) *UniversityService {
	return &UniversityService{DB: db}
}

func (s *UniversityService) ListUniversities(ctx context.Context) []dto.UniversityResponse {
	var rows []model.UniversityModel
	if err := s.DB.WithContext(ctx).
		Preload("City").
		Order("university_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListUniversities: %v", err)
		return []dto.UniversityResponse{}
	}
	return dto.ToUniversityResponseList(rows)
}

// GetUniversityByShortName matches the stored short name ("UoM" etc.),
// case-insensitively. Not-found and store failures both return nil.
func (s *UniversityService) GetUniversityByShortName(ctx context.Context, shortName string) *dto.UniversityResponse {
	var row model.UniversityModel
	if err := s.DB.WithContext(ctx).
		Preload("City").
		Where("LOWER(university_short_name) = LOWER(?)", shortName).
		First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] GetUniversityByShortName %q: %v", shortName, err)
		}
		return nil
	}
	return dto.ToUniversityResponse(&row)
}

// GetUniversityBySlug resolves a /universities/:slug path segment: first as
// a short name, then as the slug derived from the full name.
func (s *UniversityService) GetUniversityBySlug(ctx context.Context, slug string) *dto.UniversityResponse {
	if uni := s.GetUniversityByShortName(ctx, slug); uni != nil {
		return uni
	}
	for _, u := range s.ListUniversities(ctx) {
		if helper.GenerateSlug(u.UniversityName) == strings.ToLower(slug) {
			uni := u
			return &uni
		}
	}
	return nil
}
