package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func callbackSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	const secret = "key_secret"
	sig := callbackSignature("order_abc", "pay_xyz", secret)

	if !VerifyRazorpaySignature("order_abc", "pay_xyz", sig, secret) {
		t.Fatal("valid signature rejected")
	}

	// Any single flipped digit must fail.
	flipped := "0" + sig[1:]
	if flipped == sig {
		flipped = "1" + sig[1:]
	}
	if VerifyRazorpaySignature("order_abc", "pay_xyz", flipped, secret) {
		t.Fatal("tampered signature accepted")
	}

	if VerifyRazorpaySignature("order_other", "pay_xyz", sig, secret) {
		t.Fatal("signature accepted for a different order")
	}
	if VerifyRazorpaySignature("order_abc", "pay_other", sig, secret) {
		t.Fatal("signature accepted for a different payment")
	}
	if VerifyRazorpaySignature("order_abc", "pay_xyz", sig, "wrong_secret") {
		t.Fatal("signature accepted under the wrong secret")
	}
	if VerifyRazorpaySignature("order_abc", "pay_xyz", "", secret) {
		t.Fatal("empty signature accepted")
	}
}

func TestSecureCompare(t *testing.T) {
	if !SecureCompare("shared-secret", "shared-secret") {
		t.Fatal("equal strings rejected")
	}
	if SecureCompare("shared-secret", "shared-secreT") {
		t.Fatal("unequal strings accepted")
	}
	if SecureCompare("shared-secret", "") {
		t.Fatal("empty candidate accepted")
	}
}
