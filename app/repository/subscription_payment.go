package repository

import (
	"context"
	"database/sql"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

type SubscriptionPaymentRepository struct {
	db DBTX
}

func NewSubscriptionPaymentRepository(db DBTX) *SubscriptionPaymentRepository {
	return &SubscriptionPaymentRepository{db: db}
}

func (r *SubscriptionPaymentRepository) Upsert(ctx context.Context, item *entity.SubscriptionPayment) error {
	query := `
		INSERT INTO subscription_payments (
			id, subscription_id, invoice_id, payment_id, amount, currency, status, description,
			billing_period_start, billing_period_end, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			subscription_id = VALUES(subscription_id),
			invoice_id = VALUES(invoice_id),
			payment_id = VALUES(payment_id),
			amount = VALUES(amount),
			currency = VALUES(currency),
			status = VALUES(status),
			description = VALUES(description),
			billing_period_start = VALUES(billing_period_start),
			billing_period_end = VALUES(billing_period_end),
			updated_at = VALUES(updated_at)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.SubscriptionID,
		nullableStringValue(item.InvoiceID),
		nullableStringValue(item.PaymentID),
		item.Amount,
		item.Currency,
		item.Status,
		nullableStringValue(item.Description),
		nullableTimeValue(item.BillingPeriodStart),
		nullableTimeValue(item.BillingPeriodEnd),
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

func (r *SubscriptionPaymentRepository) FindByID(ctx context.Context, id string) (*entity.SubscriptionPayment, error) {
	query := `
		SELECT id, subscription_id, invoice_id, payment_id, amount, currency, status, description,
			billing_period_start, billing_period_end, created_at, updated_at
		FROM subscription_payments
		WHERE id = ?
	`

	item := &entity.SubscriptionPayment{}
	if err := scanSubscriptionPayment(r.db.QueryRowContext(ctx, query, id), item); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return item, nil
}

func (r *SubscriptionPaymentRepository) ListBySubscription(ctx context.Context, subscriptionID string, limit, offset int32) ([]*entity.SubscriptionPayment, error) {
	query := `
		SELECT id, subscription_id, invoice_id, payment_id, amount, currency, status, description,
			billing_period_start, billing_period_end, created_at, updated_at
		FROM subscription_payments
		WHERE subscription_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, subscriptionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.SubscriptionPayment, 0)
	for rows.Next() {
		item := &entity.SubscriptionPayment{}
		if err := scanSubscriptionPayment(rows, item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanSubscriptionPayment(scan rowScanner, item *entity.SubscriptionPayment) error {
	var invoiceID sql.NullString
	var paymentID sql.NullString
	var description sql.NullString
	var periodStart sql.NullTime
	var periodEnd sql.NullTime

	err := scan.Scan(
		&item.ID,
		&item.SubscriptionID,
		&invoiceID,
		&paymentID,
		&item.Amount,
		&item.Currency,
		&item.Status,
		&description,
		&periodStart,
		&periodEnd,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return err
	}

	item.InvoiceID = stringPtrFromNull(invoiceID)
	item.PaymentID = stringPtrFromNull(paymentID)
	item.Description = stringPtrFromNull(description)
	item.BillingPeriodStart = timePtrFromNull(periodStart)
	item.BillingPeriodEnd = timePtrFromNull(periodEnd)

	return nil
}
