package model

import (
	"github.com/google/uuid"
)

type CategoryModel struct {
	CategoryID   uuid.UUID `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`
	CategoryName string    `gorm:"column:category_name;type:varchar(100);not null" json:"category_name"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
