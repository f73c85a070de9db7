package db_models

import (
	"github.com/google/uuid"
)

type CreditTransactionType string

const (
	TxnTypeTrial    CreditTransactionType = "trial"
	TxnTypePurchase CreditTransactionType = "purchase"
)

// CreditTransaction is the append-only half of the ledger. Credits is a
// signed delta; nothing writes a negative one today but the schema allows it.
// The unique index on RazorpayPaymentID is what makes purchase grants
// replay-safe: a second grant for the same payment fails the insert.
type CreditTransaction struct {
	BaseModel
	UserID            uuid.UUID             `gorm:"type:uuid;index"`
	Credits           int                   `gorm:"not null"`
	Type              CreditTransactionType `gorm:"size:16;index"`
	Description       string
	RazorpayPaymentID *string `gorm:"uniqueIndex"`

	Account Account `gorm:"foreignKey:UserID"`
}
