package razorpay

import (
	"context"
	"net/url"
	"strconv"
)

type CreatePlanRequest struct {
	Period   string            `json:"period"`
	Interval int32             `json:"interval"`
	Item     PlanItem          `json:"item"`
	Notes    map[string]string `json:"notes,omitempty"`
}

func (c *Client) CreatePlan(ctx context.Context, req *CreatePlanRequest) (*Plan, error) {
	plan := &Plan{}
	if err := c.post(ctx, "/plans", req, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Client) FetchPlan(ctx context.Context, planID string) (*Plan, error) {
	plan := &Plan{}
	if err := c.get(ctx, "/plans/"+url.PathEscape(planID), plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (c *Client) ListPlans(ctx context.Context, count, skip int32) (*PlanList, error) {
	query := url.Values{}
	query.Set("count", strconv.FormatInt(int64(count), 10))
	query.Set("skip", strconv.FormatInt(int64(skip), 10))

	list := &PlanList{}
	if err := c.get(ctx, "/plans?"+query.Encode(), list); err != nil {
		return nil, err
	}
	return list, nil
}

type CreateSubscriptionRequest struct {
	PlanID         string            `json:"plan_id"`
	CustomerNotify int32             `json:"customer_notify"`
	Quantity       int32             `json:"quantity"`
	TotalCount     int32             `json:"total_count,omitempty"`
	StartAt        int64             `json:"start_at,omitempty"`
	Notes          map[string]string `json:"notes,omitempty"`
}

func (c *Client) CreateSubscription(ctx context.Context, req *CreateSubscriptionRequest) (*Subscription, error) {
	sub := &Subscription{}
	if err := c.post(ctx, "/subscriptions", req, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *Client) FetchSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	sub := &Subscription{}
	if err := c.get(ctx, "/subscriptions/"+url.PathEscape(subscriptionID), sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *Client) ListSubscriptions(ctx context.Context, count, skip int32, planID, customerID string) (*SubscriptionList, error) {
	query := url.Values{}
	query.Set("count", strconv.FormatInt(int64(count), 10))
	query.Set("skip", strconv.FormatInt(int64(skip), 10))
	if planID != "" {
		query.Set("plan_id", planID)
	}
	if customerID != "" {
		query.Set("customer_id", customerID)
	}

	list := &SubscriptionList{}
	if err := c.get(ctx, "/subscriptions?"+query.Encode(), list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string, cancelAtCycleEnd bool) (*Subscription, error) {
	cycleEnd := int32(0)
	if cancelAtCycleEnd {
		cycleEnd = 1
	}
	body := struct {
		CancelAtCycleEnd int32 `json:"cancel_at_cycle_end"`
	}{CancelAtCycleEnd: cycleEnd}

	sub := &Subscription{}
	if err := c.post(ctx, "/subscriptions/"+url.PathEscape(subscriptionID)+"/cancel", body, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *Client) PauseSubscription(ctx context.Context, subscriptionID, pauseAt string) (*Subscription, error) {
	body := struct {
		PauseAt string `json:"pause_at"`
	}{PauseAt: pauseAt}

	sub := &Subscription{}
	if err := c.post(ctx, "/subscriptions/"+url.PathEscape(subscriptionID)+"/pause", body, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *Client) ResumeSubscription(ctx context.Context, subscriptionID, resumeAt string) (*Subscription, error) {
	body := struct {
		ResumeAt string `json:"resume_at"`
	}{ResumeAt: resumeAt}

	sub := &Subscription{}
	if err := c.post(ctx, "/subscriptions/"+url.PathEscape(subscriptionID)+"/resume", body, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (c *Client) ListInvoices(ctx context.Context, subscriptionID string) (*InvoiceList, error) {
	query := url.Values{}
	query.Set("subscription_id", subscriptionID)

	list := &InvoiceList{}
	if err := c.get(ctx, "/invoices?"+query.Encode(), list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) FetchInvoice(ctx context.Context, invoiceID string) (*Invoice, error) {
	invoice := &Invoice{}
	if err := c.get(ctx, "/invoices/"+url.PathEscape(invoiceID), invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}
