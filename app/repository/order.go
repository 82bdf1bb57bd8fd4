package repository

import (
	"context"
	"database/sql"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Upsert(ctx context.Context, order *entity.Order) error {
	notesJSON, err := serializeNotes(order.Notes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO orders (
			id, amount, amount_paid, amount_due, currency, receipt, status, attempts, notes_json,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			amount = VALUES(amount),
			amount_paid = VALUES(amount_paid),
			amount_due = VALUES(amount_due),
			currency = VALUES(currency),
			receipt = VALUES(receipt),
			status = VALUES(status),
			attempts = VALUES(attempts),
			notes_json = VALUES(notes_json),
			updated_at = VALUES(updated_at)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.ID,
		order.Amount,
		order.AmountPaid,
		order.AmountDue,
		order.Currency,
		nullableStringValue(order.Receipt),
		order.Status,
		order.Attempts,
		notesJSON,
		order.CreatedAt,
		order.UpdatedAt,
	)
	return err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, amount, amount_paid, amount_due, currency, receipt, status, attempts, notes_json,
			created_at, updated_at
		FROM orders
		WHERE id = ?
	`

	order := &entity.Order{}
	if err := scanOrder(r.db.QueryRowContext(ctx, query, id), order); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *OrderRepository) List(ctx context.Context, limit, offset int32) ([]*entity.Order, error) {
	query := `
		SELECT id, amount, amount_paid, amount_due, currency, receipt, status, attempts, notes_json,
			created_at, updated_at
		FROM orders
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*entity.Order, 0)
	for rows.Next() {
		item := &entity.Order{}
		if err := scanOrder(rows, item); err != nil {
			return nil, err
		}
		orders = append(orders, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrder(scan rowScanner, order *entity.Order) error {
	var receipt sql.NullString
	var notesJSON string

	err := scan.Scan(
		&order.ID,
		&order.Amount,
		&order.AmountPaid,
		&order.AmountDue,
		&order.Currency,
		&receipt,
		&order.Status,
		&order.Attempts,
		&notesJSON,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	order.Receipt = stringPtrFromNull(receipt)

	notes, err := parseNotes(notesJSON)
	if err != nil {
		return err
	}
	order.Notes = notes

	return nil
}
