package model

import (
	"time"

	"github.com/google/uuid"
)

// A multi-part event carries ordered schedule entries (doors open, main
// slot, close). event_schedule_is_end marks the closing entry.
type EventScheduleModel struct {
	EventScheduleID      uuid.UUID `gorm:"column:event_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_schedule_id"`
	EventScheduleEventID uuid.UUID `gorm:"column:event_schedule_event_id;type:uuid;not null;index" json:"event_schedule_event_id"`

	EventScheduleTime     time.Time `gorm:"column:event_schedule_time;type:timestamptz;not null" json:"event_schedule_time"`
	EventScheduleIsEnd    bool      `gorm:"column:event_schedule_is_end;default:false" json:"event_schedule_is_end"`
	EventScheduleIndex    int       `gorm:"column:event_schedule_index;not null;default:0" json:"event_schedule_index"`
	EventScheduleLocation *string   `gorm:"column:event_schedule_location;type:varchar(255)" json:"event_schedule_location,omitempty"`
}

func (EventScheduleModel) TableName() string {
	return "event_schedules"
}
