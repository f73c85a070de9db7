package db_models

import (
	"github.com/google/uuid"
)

// Task is extracted from a meeting by the external pipeline. Owner keeps the
// free-text assignee name as received; OwnerMemberID is set only when the
// best-effort match against the team roster succeeds.
type Task struct {
	BaseModel
	MeetingID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Task          string    `gorm:"not null"`
	Dependencies  string    // doubles as the task description
	Owner         string
	OwnerMemberID *uuid.UUID `gorm:"type:uuid;index"`
	Status        string     `gorm:"size:32;default:'Pending'"`
	Priority      string     `gorm:"size:16;default:'medium'"`
	DueDate       *int64

	Meeting     Meeting     `gorm:"foreignKey:MeetingID"`
	OwnerMember *TeamMember `gorm:"foreignKey:OwnerMemberID"`
}
