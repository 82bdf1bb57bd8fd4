package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signHex(message, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	client := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "secret"})

	sig := signHex("order_abc|pay_xyz", "secret")
	if !client.VerifyPaymentSignature("order_abc", "pay_xyz", sig) {
		t.Fatal("expected valid payment signature to verify")
	}
	if client.VerifyPaymentSignature("order_abc", "pay_other", sig) {
		t.Fatal("expected signature for different payment id to fail")
	}
	if client.VerifyPaymentSignature("order_abc", "pay_xyz", "") {
		t.Fatal("expected empty signature to fail")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	client := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "secret", WebhookSecret: "whsec"})
	payload := []byte(`{"entity":"event","event":"payment.captured"}`)

	sig := signHex(string(payload), "whsec")
	if !client.VerifyWebhookSignature(payload, sig) {
		t.Fatal("expected valid webhook signature to verify")
	}

	// Any single-byte mutation of the body must be rejected.
	for i := range payload {
		mutated := make([]byte, len(payload))
		copy(mutated, payload)
		mutated[i] ^= 0x01
		if client.VerifyWebhookSignature(mutated, sig) {
			t.Fatalf("expected mutated payload at byte %d to fail verification", i)
		}
	}

	wrongSecret := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "secret", WebhookSecret: "whsec2"})
	if wrongSecret.VerifyWebhookSignature(payload, sig) {
		t.Fatal("expected signature under a different secret to fail")
	}
}

func TestVerifyWebhookSignatureRequiresSecret(t *testing.T) {
	client := NewClient(Config{KeyID: "rzp_test_key", KeySecret: "secret"})
	payload := []byte(`{}`)
	if client.VerifyWebhookSignature(payload, signHex(string(payload), "")) {
		t.Fatal("expected verification to fail when webhook secret is not configured")
	}
}
