package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"unipresence_backend/internals/features/societies/dto"
	"unipresence_backend/internals/features/societies/model"
)

type SocietyService struct {
	DB *gorm.DB
}

func NewSocietyService(db *gorm.DB) *SocietyService {
	return &SocietyService{DB: db}
}

func (s *SocietyService) baseQuery(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).Preload("University")
}

func (s *SocietyService) ListSocieties(ctx context.Context) []dto.SocietyResponse {
	var rows []model.SocietyModel
	if err := s.baseQuery(ctx).
		Order("society_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListSocieties: %v", err)
		return []dto.SocietyResponse{}
	}
	return dto.ToSocietyResponseList(rows)
}

// GetSocietyByHandle looks a society up by its Instagram handle.
func (s *SocietyService) GetSocietyByHandle(ctx context.Context, handle string) *dto.SocietyResponse {
	var row model.SocietyModel
	if err := s.baseQuery(ctx).
		Where("society_instagram_handle = ?", handle).
		First(&row).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] GetSocietyByHandle %q: %v", handle, err)
		}
		return nil
	}
	return dto.ToSocietyResponse(&row)
}

func (s *SocietyService) ListSocietiesByUniversity(ctx context.Context, universityID uuid.UUID) []dto.SocietyResponse {
	var rows []model.SocietyModel
	if err := s.baseQuery(ctx).
		Where("society_university_id = ?", universityID).
		Order("society_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListSocietiesByUniversity %s: %v", universityID, err)
		return []dto.SocietyResponse{}
	}
	return dto.ToSocietyResponseList(rows)
}
