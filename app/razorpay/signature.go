package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifyPaymentSignature checks the checkout callback signature: the hex
// HMAC-SHA256 of "order_id|payment_id" keyed with the API secret.
func (c *Client) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return verifyHMAC([]byte(orderID+"|"+paymentID), signature, c.cfg.KeySecret)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// raw request body. Always false when no webhook secret is configured.
func (c *Client) VerifyWebhookSignature(payload []byte, signature string) bool {
	if strings.TrimSpace(c.cfg.WebhookSecret) == "" {
		return false
	}
	return verifyHMAC(payload, signature, c.cfg.WebhookSecret)
}

func verifyHMAC(message []byte, signature, secret string) bool {
	signature = strings.TrimSpace(signature)
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(message)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
