package model

import (
	"time"

	"github.com/google/uuid"

	cityModel "unipresence_backend/internals/features/cities/model"
)

type UniversityModel struct {
	UniversityID        uuid.UUID  `gorm:"column:university_id;type:uuid;default:gen_random_uuid();primaryKey" json:"university_id"`
	UniversityName      string     `gorm:"column:university_name;type:varchar(255);not null" json:"university_name"`
	UniversityShortName string     `gorm:"column:university_short_name;type:varchar(50);not null" json:"university_short_name"`
	UniversityCityID    *uuid.UUID `gorm:"column:university_city_id;type:uuid;index" json:"university_city_id"`

	UniversityDescription      *string `gorm:"column:university_description;type:text" json:"university_description,omitempty"`
	UniversityBuildingImageURL *string `gorm:"column:university_building_image_url;type:text" json:"university_building_image_url,omitempty"`
	UniversityLogoURL          *string `gorm:"column:university_logo_url;type:text" json:"university_logo_url,omitempty"`

	UniversityCreatedAt time.Time `gorm:"column:university_created_at;type:timestamptz;autoCreateTime" json:"university_created_at"`

	City *cityModel.CityModel `gorm:"foreignKey:UniversityCityID;references:CityID" json:"city,omitempty"`
}

func (UniversityModel) TableName() string {
	return "universities"
}
