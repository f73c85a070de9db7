package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentOrderStatus string

const (
	OrderStatusCreated   PaymentOrderStatus = "created"
	OrderStatusCompleted PaymentOrderStatus = "completed"
)

// PaymentOrder tracks one gateway order. The only transition is
// created -> completed; an order that never completes stays created and is
// operationally treated as abandoned. UserID is nullable because anonymous
// checkouts are reconciled to an account after login, via SessionToken.
type PaymentOrder struct {
	BaseModel
	UserID            *uuid.UUID         `gorm:"type:uuid;index"`
	RazorpayOrderID   string             `gorm:"uniqueIndex"`
	RazorpayPaymentID *string            `gorm:"index"`
	Amount            int64              // minor currency units (paise)
	Credits           int                `gorm:"not null"`
	PlanName          string             `gorm:"size:64"`
	Status            PaymentOrderStatus `gorm:"size:16;index"`
	SessionToken      *string            `gorm:"index"`
	CompletedAt       *int64

	// Raw gateway notes snapshot for traceability
	Notes datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
