package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Meeting rows are created exclusively by webhook ingestion and are read-only
// to the rest of the application. Mom holds the minutes-of-meeting content as
// an opaque JSON blob produced by the external pipeline.
type Meeting struct {
	BaseModel
	Title       string `gorm:"not null"`
	MeetingDate int64  `gorm:"not null;index"`
	Mom         datatypes.JSON `gorm:"type:jsonb"`

	AttendeeNames pq.StringArray `gorm:"type:text[]"`

	Tasks []Task `gorm:"foreignKey:MeetingID"`
}
