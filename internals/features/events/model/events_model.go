package model

import (
	"time"

	"github.com/google/uuid"

	categoryModel "unipresence_backend/internals/features/categories/model"
)

type EventModel struct {
	EventID          uuid.UUID  `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string     `gorm:"column:event_title;type:varchar(255);not null" json:"event_title"`
	EventDescription string     `gorm:"column:event_description;type:text" json:"event_description"`
	EventDate        time.Time  `gorm:"column:event_date;type:timestamptz;not null;index:idx_events_date" json:"event_date"`
	EventEnd         *time.Time `gorm:"column:event_end;type:timestamptz" json:"event_end,omitempty"`

	EventLocation    string  `gorm:"column:event_location;type:varchar(255)" json:"event_location"`
	EventLocationURL *string `gorm:"column:event_location_url;type:text" json:"event_location_url,omitempty"`
	EventIsOnline    bool    `gorm:"column:event_is_online;default:false" json:"event_is_online"`

	EventIsFree bool    `gorm:"column:event_is_free;default:false" json:"event_is_free"`
	EventPrice  *string `gorm:"column:event_price;type:varchar(50)" json:"event_price,omitempty"`

	EventCategoryID      *uuid.UUID `gorm:"column:event_category_id;type:uuid;index" json:"event_category_id"`
	EventRegistrationURL *string    `gorm:"column:event_registration_url;type:text" json:"event_registration_url,omitempty"`
	EventSourcePostURL   *string    `gorm:"column:event_source_post_url;type:text" json:"event_source_post_url,omitempty"`
	EventLikes           int        `gorm:"column:event_likes;not null;default:0;index:idx_events_likes" json:"event_likes"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`

	// Slugs are derived from event_title at read time: deliberately no
	// slug column and no uniqueness, matching the published URL scheme.

	Category       *categoryModel.CategoryModel `gorm:"foreignKey:EventCategoryID;references:CategoryID" json:"category,omitempty"`
	EventSocieties []EventSocietyModel          `gorm:"foreignKey:EventSocietyEventID;references:EventID" json:"event_societies,omitempty"`
	EventImages    []EventImageModel            `gorm:"foreignKey:EventImageEventID;references:EventID" json:"event_images,omitempty"`
	EventSchedules []EventScheduleModel         `gorm:"foreignKey:EventScheduleEventID;references:EventID" json:"event_schedules,omitempty"`
}

func (EventModel) TableName() string {
	return "events"
}
