package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	"unipresence_backend/internals/features/categories/dto"
	"unipresence_backend/internals/features/categories/model"
)

type CategoryService struct {
	DB *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{DB: db}
}

func (s *CategoryService) ListCategories(ctx context.Context) []dto.CategoryResponse {
	var rows []model.CategoryModel
	if err := s.DB.WithContext(ctx).
		Order("category_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] ListCategories: %v", err)
		return []dto.CategoryResponse{}
	}
	return dto.ToCategoryResponseList(rows)
}
