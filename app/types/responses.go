package types

// Read-model responses for the locally mirrored rows. Remote passthrough
// endpoints return the provider entities as-is.

type Order struct {
	ID         string            `json:"id"`
	Amount     int64             `json:"amount"`
	AmountPaid int64             `json:"amount_paid"`
	AmountDue  int64             `json:"amount_due"`
	Currency   string            `json:"currency"`
	Receipt    string            `json:"receipt,omitempty"`
	Status     string            `json:"status"`
	Attempts   int32             `json:"attempts"`
	Notes      map[string]string `json:"notes"`
	CreatedAt  string            `json:"created_at"`
	UpdatedAt  string            `json:"updated_at"`
}

type OrderListResponse struct {
	Total  int      `json:"total"`
	Orders []*Order `json:"orders"`
}

type Payment struct {
	ID          string `json:"id"`
	OrderID     string `json:"order_id,omitempty"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Method      string `json:"method,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type PaymentListResponse struct {
	Total    int        `json:"total"`
	Payments []*Payment `json:"payments"`
}

type Subscription struct {
	ID           string            `json:"id"`
	PlanID       string            `json:"plan_id,omitempty"`
	CustomerID   string            `json:"customer_id,omitempty"`
	Status       string            `json:"status"`
	Quantity     int32             `json:"quantity"`
	CurrentStart string            `json:"current_start,omitempty"`
	CurrentEnd   string            `json:"current_end,omitempty"`
	ChargeAt     string            `json:"charge_at,omitempty"`
	StartAt      string            `json:"start_at,omitempty"`
	EndAt        string            `json:"end_at,omitempty"`
	EndedAt      string            `json:"ended_at,omitempty"`
	AuthAttempts int32             `json:"auth_attempts"`
	TotalCount   int32             `json:"total_count"`
	PaidCount    int32             `json:"paid_count"`
	Notes        map[string]string `json:"notes"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

type SubscriptionListResponse struct {
	Total         int             `json:"total"`
	Subscriptions []*Subscription `json:"subscriptions"`
}

type SubscriptionPayment struct {
	ID                 string `json:"id"`
	SubscriptionID     string `json:"subscription_id"`
	InvoiceID          string `json:"invoice_id,omitempty"`
	PaymentID          string `json:"payment_id,omitempty"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	Status             string `json:"status"`
	Description        string `json:"description,omitempty"`
	BillingPeriodStart string `json:"billing_period_start,omitempty"`
	BillingPeriodEnd   string `json:"billing_period_end,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type SubscriptionPaymentListResponse struct {
	Total    int                    `json:"total"`
	Invoices []*SubscriptionPayment `json:"invoices"`
}

type WebhookEvent struct {
	ID                string `json:"id"`
	EventType         string `json:"event_type"`
	AccountID         string `json:"account_id,omitempty"`
	SignatureVerified bool   `json:"signature_verified"`
	Processed         bool   `json:"processed"`
	CreatedAt         string `json:"created_at"`
}

type WebhookEventListResponse struct {
	Total  int             `json:"total"`
	Events []*WebhookEvent `json:"events"`
}

type WebhookAckResponse struct {
	Status    string `json:"status"`
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	Duplicate bool   `json:"duplicate,omitempty"`
}
