package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifyRazorpaySignature recomputes the HMAC-SHA256 the gateway signs its
// payment callbacks with: hex(hmac_sha256(orderID + "|" + paymentID, secret)).
// This is the sole trust boundary against forged "payment succeeded"
// callbacks, so the comparison is constant-time and any mismatch fails closed.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SecureCompare is a constant-time string equality check used for the webhook
// shared secret.
func SecureCompare(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
