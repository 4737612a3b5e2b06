package model

import (
	"time"

	"github.com/google/uuid"

	societyModel "unipresence_backend/internals/features/societies/model"
)

// Join row: an event can be co-hosted by several societies; the first entry
// (by created_at) is treated as the primary host on event cards.
type EventSocietyModel struct {
	EventSocietyEventID   uuid.UUID `gorm:"column:event_society_event_id;type:uuid;primaryKey" json:"event_society_event_id"`
	EventSocietySocietyID uuid.UUID `gorm:"column:event_society_society_id;type:uuid;primaryKey" json:"event_society_society_id"`

	EventSocietyCreatedAt time.Time `gorm:"column:event_society_created_at;type:timestamptz;autoCreateTime" json:"event_society_created_at"`

	Society *societyModel.SocietyModel `gorm:"foreignKey:EventSocietySocietyID;references:SocietyID" json:"society,omitempty"`
}

func (EventSocietyModel) TableName() string {
	return "event_societies"
}
