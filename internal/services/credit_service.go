package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minutely/internal/models/db_models"
	"minutely/internal/models/response_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

const (
	TrialCredits = 5
	TrialDays    = 14
)

const (
	AccessReasonNoAccount    = "no_account"
	AccessReasonNoCredits    = "no_credits"
	AccessReasonTrialExpired = "trial_expired"
)

type CreditServiceInterface interface {
	// CreateTrial enrolls a user into the 14-day trial with the fixed grant.
	// Fails with ErrAlreadyEnrolled if a balance row already exists.
	CreateTrial(ctx context.Context, userID uuid.UUID) (*response_models.TrialResponse, error)

	// GrantCredits credits the ledger for a completed purchase. Replays of
	// the same paymentRef fail with ErrDuplicateGrant and leave the balance
	// untouched.
	GrantCredits(ctx context.Context, userID uuid.UUID, amount int, description string, paymentRef string) error

	Balance(ctx context.Context, userID uuid.UUID) (*response_models.CreditBalanceResponse, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]response_models.CreditTransactionResponse, error)

	// CheckAccess applies the dashboard gating policy: a positive balance
	// and, for trial users, an unexpired window.
	CheckAccess(ctx context.Context, userID uuid.UUID) (*response_models.AccessDecision, error)
}

type CreditService struct {
	creditRepo  repositories.CreditRepository
	accountRepo repositories.AccountRepository
	mailService IMailService
	now         func() time.Time
}

func NewCreditService(creditRepo repositories.CreditRepository, accountRepo repositories.AccountRepository, mailService IMailService) CreditServiceInterface {
	return &CreditService{
		creditRepo:  creditRepo,
		accountRepo: accountRepo,
		mailService: mailService,
		now:         time.Now,
	}
}

func (s *CreditService) CreateTrial(ctx context.Context, userID uuid.UUID) (*response_models.TrialResponse, error) {
	now := s.now()
	start := now.Unix()
	end := now.AddDate(0, 0, TrialDays).Unix()

	credit := &db_models.UserCredit{
		UserID:           userID,
		Credits:          TrialCredits,
		IsTrialUser:      true,
		TrialStartDate:   &start,
		TrialEndDate:     &end,
		TrialCreditsUsed: 0,
	}
	txn := &db_models.CreditTransaction{
		UserID:      userID,
		Credits:     TrialCredits,
		Type:        db_models.TxnTypeTrial,
		Description: fmt.Sprintf("%d-Day Free Trial - %d Credits", TrialDays, TrialCredits),
	}

	if err := s.creditRepo.CreateTrial(ctx, credit, txn); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrAlreadyEnrolled
		}
		log.Printf("trial creation failed for %s: %v", userID, err)
		return nil, utils.ErrDatabaseError
	}

	s.notifyTrialStarted(ctx, userID, time.Unix(end, 0))

	return &response_models.TrialResponse{
		Success:      true,
		TrialEndDate: time.Unix(end, 0).UTC().Format(time.RFC3339),
		Credits:      TrialCredits,
	}, nil
}

func (s *CreditService) GrantCredits(ctx context.Context, userID uuid.UUID, amount int, description string, paymentRef string) error {
	if amount <= 0 {
		return utils.ErrInvalidAmount
	}

	txn := &db_models.CreditTransaction{
		UserID:      userID,
		Credits:     amount,
		Type:        db_models.TxnTypePurchase,
		Description: description,
	}
	if paymentRef != "" {
		txn.RazorpayPaymentID = &paymentRef
	}

	if err := s.creditRepo.GrantCredits(ctx, userID, amount, txn); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.ErrDuplicateGrant
		}
		log.Printf("credit grant failed for %s: %v", userID, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CreditService) Balance(ctx context.Context, userID uuid.UUID) (*response_models.CreditBalanceResponse, error) {
	credit, err := s.creditRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if credit == nil {
		return &response_models.CreditBalanceResponse{}, nil
	}

	return &response_models.CreditBalanceResponse{
		Credits:          credit.Credits,
		IsTrialUser:      credit.IsTrialUser,
		TrialStartDate:   credit.TrialStartDate,
		TrialEndDate:     credit.TrialEndDate,
		TrialCreditsUsed: credit.TrialCreditsUsed,
		TrialExpired:     IsTrialExpired(credit, s.now()),
	}, nil
}

func (s *CreditService) ListTransactions(ctx context.Context, userID uuid.UUID) ([]response_models.CreditTransactionResponse, error) {
	txns, err := s.creditRepo.ListTransactions(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.CreditTransactionResponse, 0, len(txns))
	for _, txn := range txns {
		out = append(out, response_models.CreditTransactionResponse{
			ID:                txn.ID.String(),
			Credits:           txn.Credits,
			Type:              string(txn.Type),
			Description:       txn.Description,
			RazorpayPaymentID: txn.RazorpayPaymentID,
			CreatedAt:         txn.CreatedAt,
		})
	}
	return out, nil
}

func (s *CreditService) CheckAccess(ctx context.Context, userID uuid.UUID) (*response_models.AccessDecision, error) {
	credit, err := s.creditRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if credit == nil {
		return &response_models.AccessDecision{CanAccess: false, Reason: AccessReasonNoAccount}, nil
	}
	if IsTrialExpired(credit, s.now()) {
		return &response_models.AccessDecision{CanAccess: false, Reason: AccessReasonTrialExpired}, nil
	}
	if !HasCredits(credit) {
		return &response_models.AccessDecision{CanAccess: false, Reason: AccessReasonNoCredits}, nil
	}
	return &response_models.AccessDecision{CanAccess: true}, nil
}

func (s *CreditService) notifyTrialStarted(ctx context.Context, userID uuid.UUID, end time.Time) {
	if s.mailService == nil || s.accountRepo == nil {
		return
	}
	account, err := s.accountRepo.FindById(ctx, userID.String())
	if err != nil || account == nil {
		return
	}
	if err := s.mailService.SendNotification(
		account.Email,
		"Your free trial has started",
		fmt.Sprintf("You have %d credits to process meetings until %s.", TrialCredits, end.UTC().Format("Jan 2, 2006")),
	); err != nil {
		log.Printf("trial mail to %s failed: %v", account.Email, err)
	}
}

// IsTrialExpired treats the boundary instant (now == trial end) as expired.
func IsTrialExpired(credit *db_models.UserCredit, now time.Time) bool {
	if credit == nil || !credit.IsTrialUser || credit.TrialEndDate == nil {
		return false
	}
	return !now.Before(time.Unix(*credit.TrialEndDate, 0))
}

func HasCredits(credit *db_models.UserCredit) bool {
	return credit != nil && credit.Credits > 0
}
