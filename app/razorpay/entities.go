package razorpay

import "encoding/json"

// Notes tolerates Razorpay's habit of returning notes as either an object or
// an empty array. Non-string values are dropped.
type Notes map[string]string

func (n *Notes) UnmarshalJSON(data []byte) error {
	var object map[string]interface{}
	if err := json.Unmarshal(data, &object); err != nil {
		// Empty notes arrive as [].
		*n = Notes{}
		return nil
	}

	result := make(Notes, len(object))
	for key, value := range object {
		if s, ok := value.(string); ok {
			result[key] = s
		}
	}
	*n = result
	return nil
}

type Order struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int32  `json:"attempts"`
	Notes      Notes  `json:"notes"`
	CreatedAt  int64  `json:"created_at"`
}

type Payment struct {
	ID          string `json:"id"`
	Entity      string `json:"entity"`
	OrderID     string `json:"order_id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Method      string `json:"method"`
	Description string `json:"description"`
	Captured    bool   `json:"captured"`
	Email       string `json:"email"`
	Contact     string `json:"contact"`
	Notes       Notes  `json:"notes"`
	CreatedAt   int64  `json:"created_at"`
}

type PlanItem struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
}

type Plan struct {
	ID        string   `json:"id"`
	Entity    string   `json:"entity"`
	Period    string   `json:"period"`
	Interval  int32    `json:"interval"`
	Item      PlanItem `json:"item"`
	Notes     Notes    `json:"notes"`
	CreatedAt int64    `json:"created_at"`
}

type PlanList struct {
	Entity string  `json:"entity"`
	Count  int32   `json:"count"`
	Items  []*Plan `json:"items"`
}

type Subscription struct {
	ID           string `json:"id"`
	Entity       string `json:"entity"`
	PlanID       string `json:"plan_id"`
	CustomerID   string `json:"customer_id"`
	Status       string `json:"status"`
	Quantity     int32  `json:"quantity"`
	CurrentStart int64  `json:"current_start"`
	CurrentEnd   int64  `json:"current_end"`
	ChargeAt     int64  `json:"charge_at"`
	StartAt      int64  `json:"start_at"`
	EndAt        int64  `json:"end_at"`
	EndedAt      int64  `json:"ended_at"`
	AuthAttempts int32  `json:"auth_attempts"`
	TotalCount   int32  `json:"total_count"`
	PaidCount    int32  `json:"paid_count"`
	ShortURL     string `json:"short_url"`
	Notes        Notes  `json:"notes"`
	CreatedAt    int64  `json:"created_at"`
}

type SubscriptionList struct {
	Entity string          `json:"entity"`
	Count  int32           `json:"count"`
	Items  []*Subscription `json:"items"`
}

type Invoice struct {
	ID                 string `json:"id"`
	Entity             string `json:"entity"`
	SubscriptionID     string `json:"subscription_id"`
	PaymentID          string `json:"payment_id"`
	OrderID            string `json:"order_id"`
	Status             string `json:"status"`
	Amount             int64  `json:"amount"`
	Currency           string `json:"currency"`
	Description        string `json:"description"`
	BillingPeriodStart int64  `json:"billing_period_start"`
	BillingPeriodEnd   int64  `json:"billing_period_end"`
	CreatedAt          int64  `json:"created_at"`
}

type InvoiceList struct {
	Entity string     `json:"entity"`
	Count  int32      `json:"count"`
	Items  []*Invoice `json:"items"`
}
