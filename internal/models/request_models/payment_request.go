package request_models

type CreateOrderRequest struct {
	Amount        int64  `json:"amount" binding:"required,gt=0"` // minor units (paise)
	Credits       int    `json:"credits" binding:"required,gt=0"`
	PlanName      string `json:"planName" binding:"required"`
	SessionToken  string `json:"sessionToken"`
	Authenticated bool   `json:"authenticated"`
}

// VerifyPaymentRequest carries the gateway's client-side callback. UserId is
// set only on the deferred post-login replay of an anonymous checkout; the
// normal path resolves the user from the bearer token instead.
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	Credits           int    `json:"credits" binding:"required,gt=0"`
	PlanName          string `json:"planName" binding:"required"`
	UserId            string `json:"userId"`
}
