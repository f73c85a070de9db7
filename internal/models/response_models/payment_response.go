package response_models

// CreateOrderResponse returns what the browser needs to open the gateway's
// client-side checkout UI.
type CreateOrderResponse struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	KeyID   string `json:"key_id"`
}

type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
