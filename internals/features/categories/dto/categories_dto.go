package dto

import (
	"unipresence_backend/internals/features/categories/model"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
}

func ToCategoryResponse(m *model.CategoryModel) *CategoryResponse {
	return &CategoryResponse{
		CategoryID:   m.CategoryID,
		CategoryName: m.CategoryName,
	}
}

func ToCategoryResponseList(models []model.CategoryModel) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToCategoryResponse(&models[i]))
	}
	return result
}
