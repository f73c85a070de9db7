package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"minutely/internal/models/db_models"
)

type CreditRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserCredit, error)

	// CreateTrial inserts the balance row and its trial ledger entry in one
	// transaction. Returns gorm.ErrDuplicatedKey when the user already has a
	// balance row, which resolves the concurrent double-submission race at
	// the unique index instead of in application code.
	CreateTrial(ctx context.Context, credit *db_models.UserCredit, txn *db_models.CreditTransaction) error

	// GrantCredits appends the ledger entry and create-or-increments the
	// balance row in one transaction. The increment is a single UPDATE
	// expression, never read-modify-write, so concurrent grants cannot lose
	// an update. A replayed payment ref fails the ledger insert with
	// gorm.ErrDuplicatedKey and rolls the whole grant back.
	GrantCredits(ctx context.Context, userID uuid.UUID, amount int, txn *db_models.CreditTransaction) error

	ListTransactions(ctx context.Context, userID uuid.UUID) ([]db_models.CreditTransaction, error)
}

type creditRepository struct {
	db *gorm.DB
}

func NewCreditRepository(db *gorm.DB) CreditRepository {
	return &creditRepository{db: db}
}

func (r *creditRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.UserCredit, error) {
	var credit db_models.UserCredit
	err := r.db.WithContext(ctx).First(&credit, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credit, nil
}

func (r *creditRepository) CreateTrial(ctx context.Context, credit *db_models.UserCredit, txn *db_models.CreditTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(credit).Error; err != nil {
			return err
		}
		return tx.Create(txn).Error
	})
}

func (r *creditRepository) GrantCredits(ctx context.Context, userID uuid.UUID, amount int, txn *db_models.CreditTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		credit := db_models.UserCredit{UserID: userID, Credits: amount}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"credits":    gorm.Expr("user_credits.credits + ?", amount),
				"updated_at": time.Now().Unix(),
			}),
		}).Create(&credit).Error
	})
}

func (r *creditRepository) ListTransactions(ctx context.Context, userID uuid.UUID) ([]db_models.CreditTransaction, error) {
	var txns []db_models.CreditTransaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
