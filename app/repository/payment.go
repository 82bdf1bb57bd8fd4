package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Upsert(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (
			id, order_id, amount, currency, status, method, description, created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			order_id = VALUES(order_id),
			amount = VALUES(amount),
			currency = VALUES(currency),
			status = VALUES(status),
			method = VALUES(method),
			description = VALUES(description),
			updated_at = VALUES(updated_at)
	`

	_, err := r.db.ExecContext(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		nullableStringValue(payment.Method),
		nullableStringValue(payment.Description),
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	return err
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	query := `
		SELECT id, order_id, amount, currency, status, method, description, created_at, updated_at
		FROM payments
		WHERE id = ?
	`

	payment := &entity.Payment{}
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), payment); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *PaymentRepository) List(ctx context.Context, limit, offset int32) ([]*entity.Payment, error) {
	query := `
		SELECT id, order_id, amount, currency, status, method, description, created_at, updated_at
		FROM payments
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		item := &entity.Payment{}
		if err := scanPayment(rows, item); err != nil {
			return nil, err
		}
		payments = append(payments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// ListStaleByStatus returns payments stuck in the given status whose last
// update is at or before the cutoff. Feeds the capture reconcile job.
func (r *PaymentRepository) ListStaleByStatus(ctx context.Context, status string, before time.Time, limit int32) ([]*entity.Payment, error) {
	query := `
		SELECT id, order_id, amount, currency, status, method, description, created_at, updated_at
		FROM payments
		WHERE status = ?
		  AND updated_at <= ?
		ORDER BY updated_at ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, status, before, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*entity.Payment, 0)
	for rows.Next() {
		item := &entity.Payment{}
		if err := scanPayment(rows, item); err != nil {
			return nil, err
		}
		payments = append(payments, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func scanPayment(scan rowScanner, payment *entity.Payment) error {
	var method sql.NullString
	var description sql.NullString

	err := scan.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&method,
		&description,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return err
	}

	payment.Method = stringPtrFromNull(method)
	payment.Description = stringPtrFromNull(description)

	return nil
}
