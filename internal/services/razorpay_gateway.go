package services

import (
	"context"
	"errors"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

type RazorpayConfig struct {
	KeyID     string // public key id, also handed to the browser checkout
	KeySecret string // server-held; signs callbacks, must never reach the client
}

// PaymentGateway abstracts the remote order API so payment_service can be
// tested against a fake.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
	KeyID() string
}

type razorpayGateway struct {
	client *razorpay.Client
	cfg    RazorpayConfig
}

func NewRazorpayGateway(cfg RazorpayConfig) (PaymentGateway, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, errors.New("missing razorpay credentials")
	}
	return &razorpayGateway{
		client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret),
		cfg:    cfg,
	}, nil
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order create: %w", err)
	}

	id, ok := order["id"].(string)
	if !ok || id == "" {
		return "", errors.New("razorpay order create: response missing order id")
	}
	return id, nil
}

func (g *razorpayGateway) KeyID() string {
	return g.cfg.KeyID
}
