package model

import (
	"time"

	"github.com/google/uuid"

	universityModel "unipresence_backend/internals/features/universities/model"
)

type SocietyModel struct {
	SocietyID              uuid.UUID  `gorm:"column:society_id;type:uuid;default:gen_random_uuid();primaryKey" json:"society_id"`
	SocietyName            string     `gorm:"column:society_name;type:varchar(255);not null" json:"society_name"`
	SocietyInstagramHandle string     `gorm:"column:society_instagram_handle;type:varchar(100);not null;index" json:"society_instagram_handle"`
	SocietyDescription     *string    `gorm:"column:society_description;type:text" json:"society_description,omitempty"`
	SocietyBioURL          *string    `gorm:"column:society_bio_url;type:text" json:"society_bio_url,omitempty"`
	SocietyImageURL        *string    `gorm:"column:society_image_url;type:text" json:"society_image_url,omitempty"`
	SocietyUniversityID    *uuid.UUID `gorm:"column:society_university_id;type:uuid;index:idx_societies_university_id" json:"society_university_id"`

	SocietyCreatedAt time.Time `gorm:"column:society_created_at;type:timestamptz;autoCreateTime" json:"society_created_at"`
	SocietyUpdatedAt time.Time `gorm:"column:society_updated_at;type:timestamptz;autoUpdateTime" json:"society_updated_at"`

	University *universityModel.UniversityModel `gorm:"foreignKey:SocietyUniversityID;references:UniversityID" json:"university,omitempty"`
}

func (SocietyModel) TableName() string {
	return "societies"
}
