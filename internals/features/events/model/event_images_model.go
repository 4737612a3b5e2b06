package model

import (
	"time"

	"github.com/google/uuid"
)

type PostImageModel struct {
	PostImageID        uuid.UUID `gorm:"column:post_image_id;type:uuid;default:gen_random_uuid();primaryKey" json:"post_image_id"`
	PostImageS3URL     string    `gorm:"column:post_image_s3_url;type:text;not null" json:"post_image_s3_url"`
	PostImageCreatedAt time.Time `gorm:"column:post_image_created_at;type:timestamptz;autoCreateTime" json:"post_image_created_at"`
}

func (PostImageModel) TableName() string {
	return "post_images"
}

// Join row linking an event to an ingested image. event_image_index orders
// the gallery; NULL index sorts as 0.
type EventImageModel struct {
	EventImageEventID     uuid.UUID  `gorm:"column:event_image_event_id;type:uuid;primaryKey" json:"event_image_event_id"`
	EventImagePostImageID uuid.UUID  `gorm:"column:event_image_post_image_id;type:uuid;primaryKey" json:"event_image_post_image_id"`
	EventImagePostID      *uuid.UUID `gorm:"column:event_image_post_id;type:uuid" json:"event_image_post_id,omitempty"`
	EventImageIndex       *int       `gorm:"column:event_image_index" json:"event_image_index,omitempty"`

	EventImageCreatedAt time.Time `gorm:"column:event_image_created_at;type:timestamptz;autoCreateTime" json:"event_image_created_at"`

	PostImage *PostImageModel `gorm:"foreignKey:EventImagePostImageID;references:PostImageID" json:"post_image,omitempty"`
}

func (EventImageModel) TableName() string {
	return "event_images"
}
