package razorpay

import (
	"context"
	"net/url"
)

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	payment := &Payment{}
	if err := c.get(ctx, "/payments/"+url.PathEscape(paymentID), payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// CapturePayment finalizes an authorized payment so funds settle. The amount
// must match the authorized amount, in minor units.
func (c *Client) CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (*Payment, error) {
	body := struct {
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	}{Amount: amount, Currency: currency}

	payment := &Payment{}
	if err := c.post(ctx, "/payments/"+url.PathEscape(paymentID)+"/capture", body, payment); err != nil {
		return nil, err
	}
	return payment, nil
}
