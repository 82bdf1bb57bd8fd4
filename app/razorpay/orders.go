package razorpay

import (
	"context"
	"net/url"
)

type CreateOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	order := &Order{}
	if err := c.post(ctx, "/orders", req, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (c *Client) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	order := &Order{}
	if err := c.get(ctx, "/orders/"+url.PathEscape(orderID), order); err != nil {
		return nil, err
	}
	return order, nil
}
