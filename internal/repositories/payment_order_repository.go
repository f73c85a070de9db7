package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minutely/internal/models/db_models"
)

type PaymentOrderRepository interface {
	Create(ctx context.Context, order *db_models.PaymentOrder) error
	FindByOrderID(ctx context.Context, razorpayOrderID string) (*db_models.PaymentOrder, error)

	// Complete moves the order created -> completed with a conditional UPDATE.
	// Returns transitioned=false when the order was already completed, which
	// is how a replayed verification callback short-circuits without
	// re-granting credits. A missing order is an error.
	Complete(ctx context.Context, razorpayOrderID, paymentID string, userID uuid.UUID, completedAt int64) (transitioned bool, order *db_models.PaymentOrder, err error)

	ListPendingBySessionToken(ctx context.Context, sessionToken string) ([]db_models.PaymentOrder, error)
}

type paymentOrderRepository struct {
	db *gorm.DB
}

func NewPaymentOrderRepository(db *gorm.DB) PaymentOrderRepository {
	return &paymentOrderRepository{db: db}
}

func (r *paymentOrderRepository) Create(ctx context.Context, order *db_models.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *paymentOrderRepository) FindByOrderID(ctx context.Context, razorpayOrderID string) (*db_models.PaymentOrder, error) {
	var order db_models.PaymentOrder
	err := r.db.WithContext(ctx).First(&order, "razorpay_order_id = ?", razorpayOrderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *paymentOrderRepository) Complete(ctx context.Context, razorpayOrderID, paymentID string, userID uuid.UUID, completedAt int64) (bool, *db_models.PaymentOrder, error) {
	result := r.db.WithContext(ctx).
		Model(&db_models.PaymentOrder{}).
		Where("razorpay_order_id = ? AND status = ?", razorpayOrderID, db_models.OrderStatusCreated).
		Updates(map[string]interface{}{
			"status":              db_models.OrderStatusCompleted,
			"razorpay_payment_id": paymentID,
			"user_id":             userID,
			"completed_at":        completedAt,
			"updated_at":          completedAt,
		})
	if result.Error != nil {
		return false, nil, result.Error
	}

	order, err := r.FindByOrderID(ctx, razorpayOrderID)
	if err != nil {
		return false, nil, err
	}
	if order == nil {
		return false, nil, gorm.ErrRecordNotFound
	}

	return result.RowsAffected > 0, order, nil
}

func (r *paymentOrderRepository) ListPendingBySessionToken(ctx context.Context, sessionToken string) ([]db_models.PaymentOrder, error) {
	var orders []db_models.PaymentOrder
	err := r.db.WithContext(ctx).
		Where("session_token = ? AND status = ?", sessionToken, db_models.OrderStatusCreated).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
