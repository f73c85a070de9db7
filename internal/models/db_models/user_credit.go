package db_models

import (
	"github.com/google/uuid"
)

// UserCredit is the current-balance row of the ledger. One per user, created
// on first trial activation or first purchase, never hard-deleted.
type UserCredit struct {
	BaseModel
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Credits          int       `gorm:"not null;default:0;check:credits >= 0"`
	IsTrialUser      bool      `gorm:"default:false"`
	TrialStartDate   *int64
	TrialEndDate     *int64
	TrialCreditsUsed int `gorm:"default:0"`

	Account Account `gorm:"foreignKey:UserID"`
}
