package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minutely/internal/models/db_models"
	"minutely/internal/models/request_models"
	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

type PaymentService interface {
	// CreateOrder opens a gateway order and records it locally in `created`
	// status. A gateway failure performs no local write.
	CreateOrder(ctx context.Context, req request_models.CreateOrderRequest, authedUserID string) (*response_models.CreateOrderResponse, error)

	// VerifyPayment checks the callback signature and, on success, completes
	// the order and credits the ledger. Both halves are idempotent, so
	// replaying the same callback is always safe and repairs a crash between
	// them.
	VerifyPayment(ctx context.Context, req request_models.VerifyPaymentRequest, authedUserID string) (*response_models.VerifyPaymentResponse, error)
}

type paymentService struct {
	gateway       PaymentGateway
	orderRepo     repositories.PaymentOrderRepository
	creditService CreditServiceInterface
	accountRepo   repositories.AccountRepository
	mailService   IMailService
	keySecret     string
	now           func() time.Time
}

func NewPaymentService(
	gateway PaymentGateway,
	orderRepo repositories.PaymentOrderRepository,
	creditService CreditServiceInterface,
	accountRepo repositories.AccountRepository,
	mailService IMailService,
	cfg RazorpayConfig,
) PaymentService {
	return &paymentService{
		gateway:       gateway,
		orderRepo:     orderRepo,
		creditService: creditService,
		accountRepo:   accountRepo,
		mailService:   mailService,
		keySecret:     cfg.KeySecret,
		now:           time.Now,
	}
}

func (p *paymentService) CreateOrder(ctx context.Context, req request_models.CreateOrderRequest, authedUserID string) (*response_models.CreateOrderResponse, error) {
	if req.Amount <= 0 || req.Credits <= 0 {
		return nil, utils.ErrInvalidAmount
	}

	receipt := BuildReceipt(authedUserID, req.SessionToken, p.now())

	notes := map[string]interface{}{
		"user_id":       "unauthenticated",
		"credits":       strconv.Itoa(req.Credits),
		"plan_name":     req.PlanName,
		"session_token": req.SessionToken,
	}
	if authedUserID != "" {
		notes["user_id"] = authedUserID
	}

	orderID, err := p.gateway.CreateOrder(ctx, req.Amount, "INR", receipt, notes)
	if err != nil {
		log.Printf("gateway order create failed: %v", err)
		return nil, utils.ErrGatewayError
	}

	order := &db_models.PaymentOrder{
		RazorpayOrderID: orderID,
		Amount:          req.Amount,
		Credits:         req.Credits,
		PlanName:        req.PlanName,
		Status:          db_models.OrderStatusCreated,
	}
	if authedUserID != "" {
		if uid, parseErr := uuid.Parse(authedUserID); parseErr == nil {
			order.UserID = &uid
		}
	}
	if req.SessionToken != "" {
		order.SessionToken = &req.SessionToken
	}
	if raw, marshalErr := json.Marshal(notes); marshalErr == nil {
		order.Notes = raw
	}

	if err := p.orderRepo.Create(ctx, order); err != nil {
		log.Printf("payment order persist failed for %s: %v", orderID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateOrderResponse{
		OrderID: orderID,
		Amount:  req.Amount,
		KeyID:   p.gateway.KeyID(),
	}, nil
}

func (p *paymentService) VerifyPayment(ctx context.Context, req request_models.VerifyPaymentRequest, authedUserID string) (*response_models.VerifyPaymentResponse, error) {
	// Deferred-login replays carry the user id in the body; the normal path
	// takes it from the bearer token.
	rawUserID := req.UserId
	if rawUserID == "" {
		rawUserID = authedUserID
	}
	userID, err := uuid.Parse(rawUserID)
	if rawUserID == "" || err != nil {
		return nil, utils.ErrUnauthenticated
	}

	// The signature check is the trust boundary: nothing is written before
	// it passes, and any mismatch fails the request.
	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, p.keySecret) {
		return nil, utils.ErrSignatureMismatch
	}

	transitioned, order, err := p.orderRepo.Complete(ctx, req.RazorpayOrderID, req.RazorpayPaymentID, userID, p.now().Unix())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrOrderNotFound
		}
		log.Printf("order completion failed for %s: %v", req.RazorpayOrderID, err)
		return nil, utils.ErrDatabaseError
	}

	// Trust the amounts captured at order creation over the client's claim.
	credits := order.Credits
	planName := order.PlanName
	if credits <= 0 {
		credits = req.Credits
		planName = req.PlanName
	}

	// Granting runs even when the order was already completed: if an earlier
	// attempt crashed between completion and grant, this replay repairs it.
	// The ledger's unique payment ref turns a true duplicate into a no-op.
	err = p.creditService.GrantCredits(ctx, userID, credits, fmt.Sprintf("%s Plan Purchase", planName), req.RazorpayPaymentID)
	if err != nil && !errors.Is(err, utils.ErrDuplicateGrant) {
		log.Printf("credit grant failed for order %s: %v", req.RazorpayOrderID, err)
		return nil, err
	}

	if transitioned {
		p.notifyPurchase(ctx, userID, planName, credits)
	}

	message := "Payment verified and credits added"
	if !transitioned {
		message = "Payment already verified"
	}
	return &response_models.VerifyPaymentResponse{Success: true, Message: message}, nil
}

func (p *paymentService) notifyPurchase(ctx context.Context, userID uuid.UUID, planName string, credits int) {
	if p.mailService == nil || p.accountRepo == nil {
		return
	}
	account, err := p.accountRepo.FindById(ctx, userID.String())
	if err != nil || account == nil {
		return
	}
	if err := p.mailService.SendNotification(
		account.Email,
		"Payment received",
		fmt.Sprintf("Your %s plan purchase added %d credits to your account.", planName, credits),
	); err != nil {
		log.Printf("purchase mail to %s failed: %v", account.Email, err)
	}
}

// BuildReceipt builds the gateway receipt identifier. Razorpay caps receipts
// at 40 characters, so the user identifier is truncated to 8 and the
// timestamp to its last 8 digits: ord_<id8>_<ts8>.
func BuildReceipt(userID, sessionToken string, now time.Time) string {
	identifier := "guest"
	if userID != "" {
		identifier = userID
		if len(identifier) > 8 {
			identifier = identifier[:8]
		}
	} else if sessionToken != "" {
		identifier = sessionToken
		if len(identifier) > 8 {
			identifier = identifier[len(identifier)-8:]
		}
	}

	ts := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ts) > 8 {
		ts = ts[len(ts)-8:]
	}

	return fmt.Sprintf("ord_%s_%s", identifier, ts)
}
