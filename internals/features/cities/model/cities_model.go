package model

import (
	"github.com/google/uuid"
)

type CityModel struct {
	CityID   uuid.UUID `gorm:"column:city_id;type:uuid;default:gen_random_uuid();primaryKey" json:"city_id"`
	CityName string    `gorm:"column:city_name;type:varchar(100);not null" json:"city_name"`
}

func (CityModel) TableName() string {
	return "cities"
}
