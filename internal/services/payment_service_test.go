package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"minutely/internal/models/db_models"
	"minutely/internal/models/request_models"
	"minutely/internal/repositories"
	"minutely/pkg/utils"
)

const testKeySecret = "test_secret_abc"

type fakeGateway struct {
	mu          sync.Mutex
	fail        bool
	orderSeq    int
	lastReceipt string
}

func (g *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail {
		return "", errors.New("gateway unreachable")
	}
	g.orderSeq++
	g.lastReceipt = receipt
	return "order_fake_1", nil
}

func (g *fakeGateway) KeyID() string { return "rzp_test_key" }

type mockOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*db_models.PaymentOrder
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*db_models.PaymentOrder)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *db_models.PaymentOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	cp := *order
	m.orders[order.RazorpayOrderID] = &cp
	return nil
}

func (m *mockOrderRepo) FindByOrderID(_ context.Context, razorpayOrderID string) (*db_models.PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[razorpayOrderID]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) Complete(_ context.Context, razorpayOrderID, paymentID string, userID uuid.UUID, completedAt int64) (bool, *db_models.PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[razorpayOrderID]
	if !ok {
		return false, nil, gorm.ErrRecordNotFound
	}
	if o.Status != db_models.OrderStatusCreated {
		cp := *o
		return false, &cp, nil
	}
	o.Status = db_models.OrderStatusCompleted
	o.RazorpayPaymentID = &paymentID
	o.UserID = &userID
	o.CompletedAt = &completedAt
	cp := *o
	return true, &cp, nil
}

func (m *mockOrderRepo) ListPendingBySessionToken(_ context.Context, sessionToken string) ([]db_models.PaymentOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.PaymentOrder
	for _, o := range m.orders {
		if o.SessionToken != nil && *o.SessionToken == sessionToken && o.Status == db_models.OrderStatusCreated {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

var _ repositories.PaymentOrderRepository = (*mockOrderRepo)(nil)

func newPaymentServiceForTest(gw PaymentGateway, orders *mockOrderRepo, credits *mockCreditRepo) *paymentService {
	return &paymentService{
		gateway:       gw,
		orderRepo:     orders,
		creditService: newCreditServiceForTest(credits, time.Now()),
		keySecret:     testKeySecret,
		now:           time.Now,
	}
}

func signCallback(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// tamper flips one hex digit so the signature is valid-looking but wrong.
func tamper(signature string) string {
	replacement := byte('0')
	if signature[0] == '0' {
		replacement = '1'
	}
	return string(replacement) + signature[1:]
}

func seedCreatedOrder(t *testing.T, orders *mockOrderRepo, orderID string, credits int, planName string) {
	t.Helper()
	err := orders.Create(context.Background(), &db_models.PaymentOrder{
		RazorpayOrderID: orderID,
		Amount:          49900,
		Credits:         credits,
		PlanName:        planName,
		Status:          db_models.OrderStatusCreated,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
}

func TestCreateOrderRecordsPendingOrder(t *testing.T) {
	gw := &fakeGateway{}
	orders := newMockOrderRepo()
	svc := newPaymentServiceForTest(gw, orders, newMockCreditRepo())
	userID := uuid.New()

	resp, err := svc.CreateOrder(context.Background(), request_models.CreateOrderRequest{
		Amount:   49900,
		Credits:  25,
		PlanName: "Pro",
	}, userID.String())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if resp.OrderID != "order_fake_1" || resp.KeyID != "rzp_test_key" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	order, _ := orders.FindByOrderID(context.Background(), "order_fake_1")
	if order == nil {
		t.Fatal("order not persisted")
	}
	if order.Status != db_models.OrderStatusCreated || order.Credits != 25 || order.PlanName != "Pro" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.UserID == nil || *order.UserID != userID {
		t.Fatalf("order not bound to payer: %+v", order.UserID)
	}
}

func TestCreateOrderGatewayFailureWritesNothing(t *testing.T) {
	gw := &fakeGateway{fail: true}
	orders := newMockOrderRepo()
	svc := newPaymentServiceForTest(gw, orders, newMockCreditRepo())

	_, err := svc.CreateOrder(context.Background(), request_models.CreateOrderRequest{
		Amount:   49900,
		Credits:  25,
		PlanName: "Pro",
	}, uuid.New().String())
	if !errors.Is(err, utils.ErrGatewayError) {
		t.Fatalf("error = %v, want ErrGatewayError", err)
	}
	if orders.count() != 0 {
		t.Fatalf("local order written despite gateway failure")
	}
}

func TestCreateOrderAnonymousCarriesSessionToken(t *testing.T) {
	gw := &fakeGateway{}
	orders := newMockOrderRepo()
	svc := newPaymentServiceForTest(gw, orders, newMockCreditRepo())

	_, err := svc.CreateOrder(context.Background(), request_models.CreateOrderRequest{
		Amount:       19900,
		Credits:      10,
		PlanName:     "Starter",
		SessionToken: "sess_0123456789abcdef",
	}, "")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	order, _ := orders.FindByOrderID(context.Background(), "order_fake_1")
	if order.UserID != nil {
		t.Fatalf("anonymous order has a user: %v", order.UserID)
	}
	if order.SessionToken == nil || *order.SessionToken != "sess_0123456789abcdef" {
		t.Fatal("session token not recorded")
	}

	pending, _ := orders.ListPendingBySessionToken(context.Background(), "sess_0123456789abcdef")
	if len(pending) != 1 {
		t.Fatalf("pending by session = %d, want 1", len(pending))
	}
}

func TestVerifyPaymentTamperedSignatureWritesNothing(t *testing.T) {
	orders := newMockOrderRepo()
	credits := newMockCreditRepo()
	svc := newPaymentServiceForTest(&fakeGateway{}, orders, credits)
	userID := uuid.New()
	seedCreatedOrder(t, orders, "order_sig", 25, "Pro")

	_, err := svc.VerifyPayment(context.Background(), request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_sig",
		RazorpayPaymentID: "pay_sig",
		RazorpaySignature: tamper(signCallback("order_sig", "pay_sig")),
		Credits:           25,
		PlanName:          "Pro",
	}, userID.String())
	if !errors.Is(err, utils.ErrSignatureMismatch) {
		t.Fatalf("error = %v, want ErrSignatureMismatch", err)
	}

	order, _ := orders.FindByOrderID(context.Background(), "order_sig")
	if order.Status != db_models.OrderStatusCreated {
		t.Fatalf("order transitioned on a bad signature: %s", order.Status)
	}
	if got := credits.balance(userID); got != 0 {
		t.Fatalf("credits granted on a bad signature: %d", got)
	}
}

func TestVerifyPaymentCompletesOrderAndGrantsCredits(t *testing.T) {
	orders := newMockOrderRepo()
	credits := newMockCreditRepo()
	svc := newPaymentServiceForTest(&fakeGateway{}, orders, credits)
	userID := uuid.New()
	seedCreatedOrder(t, orders, "order_ok", 25, "Pro")

	resp, err := svc.VerifyPayment(context.Background(), request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_ok",
		RazorpayPaymentID: "pay_ok",
		RazorpaySignature: signCallback("order_ok", "pay_ok"),
		Credits:           25,
		PlanName:          "Pro",
	}, userID.String())
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if !resp.Success {
		t.Fatalf("unexpected response: %+v", resp)
	}

	order, _ := orders.FindByOrderID(context.Background(), "order_ok")
	if order.Status != db_models.OrderStatusCompleted {
		t.Fatalf("order status = %s, want completed", order.Status)
	}
	if order.RazorpayPaymentID == nil || *order.RazorpayPaymentID != "pay_ok" {
		t.Fatal("payment id not recorded on the order")
	}
	if order.UserID == nil || *order.UserID != userID {
		t.Fatal("order not reconciled to the payer")
	}
	if order.CompletedAt == nil {
		t.Fatal("completion time not recorded")
	}
	if got := credits.balance(userID); got != 25 {
		t.Fatalf("balance = %d, want 25", got)
	}
}

func TestVerifyPaymentReplayDoesNotDoubleCredit(t *testing.T) {
	orders := newMockOrderRepo()
	credits := newMockCreditRepo()
	svc := newPaymentServiceForTest(&fakeGateway{}, orders, credits)
	userID := uuid.New()
	seedCreatedOrder(t, orders, "order_replay", 10, "Starter")

	req := request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_replay",
		RazorpayPaymentID: "pay_replay",
		RazorpaySignature: signCallback("order_replay", "pay_replay"),
		Credits:           10,
		PlanName:          "Starter",
	}

	if _, err := svc.VerifyPayment(context.Background(), req, userID.String()); err != nil {
		t.Fatalf("first verify: %v", err)
	}
	resp, err := svc.VerifyPayment(context.Background(), req, userID.String())
	if err != nil {
		t.Fatalf("replayed verify: %v", err)
	}
	if !resp.Success {
		t.Fatalf("replay should still succeed: %+v", resp)
	}

	if got := credits.balance(userID); got != 10 {
		t.Fatalf("balance = %d after replay, want 10", got)
	}
	if n := len(credits.txnsOfType(userID, db_models.TxnTypePurchase)); n != 1 {
		t.Fatalf("purchase transactions = %d, want 1", n)
	}
}

func TestVerifyPaymentTrustsStoredAmountsOverClient(t *testing.T) {
	orders := newMockOrderRepo()
	credits := newMockCreditRepo()
	svc := newPaymentServiceForTest(&fakeGateway{}, orders, credits)
	userID := uuid.New()
	seedCreatedOrder(t, orders, "order_trust", 10, "Starter")

	_, err := svc.VerifyPayment(context.Background(), request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_trust",
		RazorpayPaymentID: "pay_trust",
		RazorpaySignature: signCallback("order_trust", "pay_trust"),
		Credits:           9999,
		PlanName:          "Inflated",
	}, userID.String())
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if got := credits.balance(userID); got != 10 {
		t.Fatalf("balance = %d, want the 10 captured at order creation", got)
	}
}

func TestVerifyPaymentRequiresIdentity(t *testing.T) {
	svc := newPaymentServiceForTest(&fakeGateway{}, newMockOrderRepo(), newMockCreditRepo())

	_, err := svc.VerifyPayment(context.Background(), request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_x",
		RazorpayPaymentID: "pay_x",
		RazorpaySignature: signCallback("order_x", "pay_x"),
		Credits:           10,
		PlanName:          "Starter",
	}, "")
	if !errors.Is(err, utils.ErrUnauthenticated) {
		t.Fatalf("error = %v, want ErrUnauthenticated", err)
	}
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	svc := newPaymentServiceForTest(&fakeGateway{}, newMockOrderRepo(), newMockCreditRepo())

	_, err := svc.VerifyPayment(context.Background(), request_models.VerifyPaymentRequest{
		RazorpayOrderID:   "order_missing",
		RazorpayPaymentID: "pay_x",
		RazorpaySignature: signCallback("order_missing", "pay_x"),
		Credits:           10,
		PlanName:          "Starter",
	}, uuid.New().String())
	if !errors.Is(err, utils.ErrOrderNotFound) {
		t.Fatalf("error = %v, want ErrOrderNotFound", err)
	}
}

func TestBuildReceiptStaysWithinGatewayLimit(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		userID       string
		sessionToken string
		wantPrefix   string
	}{
		{userID: uuid.New().String(), wantPrefix: "ord_"},
		{sessionToken: "sess_0123456789abcdef", wantPrefix: "ord_"},
		{wantPrefix: "ord_guest_"},
	}
	for _, tc := range cases {
		receipt := BuildReceipt(tc.userID, tc.sessionToken, now)
		if len(receipt) > 40 {
			t.Fatalf("receipt %q is %d chars, gateway limit is 40", receipt, len(receipt))
		}
		if !strings.HasPrefix(receipt, tc.wantPrefix) {
			t.Fatalf("receipt %q missing prefix %q", receipt, tc.wantPrefix)
		}
	}

	long := BuildReceipt(uuid.New().String(), "", now)
	if parts := strings.Split(long, "_"); len(parts) != 3 || len(parts[1]) != 8 || len(parts[2]) != 8 {
		t.Fatalf("receipt %q not in ord_<id8>_<ts8> form", long)
	}
}
