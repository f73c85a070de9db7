package db_models

import (
	"github.com/google/uuid"
)

type TeamMember struct {
	BaseModel
	Name             string    `gorm:"not null"`
	Email            string    `gorm:"not null;uniqueIndex:idx_team_member_manager_email"`
	Role             string    `gorm:"size:64;default:'Team Member'"`
	ProjectManagerID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_team_member_manager_email"`

	ProjectManager Account `gorm:"foreignKey:ProjectManagerID"`
}
