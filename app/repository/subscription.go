package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

type SubscriptionRepository struct {
	db DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *entity.Subscription) error {
	notesJSON, err := serializeNotes(sub.Notes)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO subscriptions (
			id, plan_id, customer_id, status, quantity,
			current_start, current_end, charge_at, start_at, end_at, ended_at,
			auth_attempts, total_count, paid_count, notes_json,
			created_at, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			plan_id = VALUES(plan_id),
			customer_id = VALUES(customer_id),
			status = VALUES(status),
			quantity = VALUES(quantity),
			current_start = VALUES(current_start),
			current_end = VALUES(current_end),
			charge_at = VALUES(charge_at),
			start_at = VALUES(start_at),
			end_at = VALUES(end_at),
			ended_at = VALUES(ended_at),
			auth_attempts = VALUES(auth_attempts),
			total_count = VALUES(total_count),
			paid_count = VALUES(paid_count),
			notes_json = VALUES(notes_json),
			updated_at = VALUES(updated_at)
	`

	_, err = r.db.ExecContext(ctx, query,
		sub.ID,
		nullableStringValue(sub.PlanID),
		nullableStringValue(sub.CustomerID),
		sub.Status,
		sub.Quantity,
		nullableTimeValue(sub.CurrentStart),
		nullableTimeValue(sub.CurrentEnd),
		nullableTimeValue(sub.ChargeAt),
		nullableTimeValue(sub.StartAt),
		nullableTimeValue(sub.EndAt),
		nullableTimeValue(sub.EndedAt),
		sub.AuthAttempts,
		nullableInt32Value(sub.TotalCount),
		sub.PaidCount,
		notesJSON,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	return err
}

// UpdateStatus touches only the status column, used after pause/resume/cancel
// passthrough calls where the full remote entity is not re-mirrored.
func (r *SubscriptionRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	query := `UPDATE subscriptions SET status = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, status, updatedAt, id)
	return err
}

func (r *SubscriptionRepository) FindByID(ctx context.Context, id string) (*entity.Subscription, error) {
	query := `
		SELECT id, plan_id, customer_id, status, quantity,
			current_start, current_end, charge_at, start_at, end_at, ended_at,
			auth_attempts, total_count, paid_count, notes_json,
			created_at, updated_at
		FROM subscriptions
		WHERE id = ?
	`

	sub := &entity.Subscription{}
	if err := scanSubscription(r.db.QueryRowContext(ctx, query, id), sub); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return sub, nil
}

func (r *SubscriptionRepository) List(ctx context.Context, limit, offset int32) ([]*entity.Subscription, error) {
	query := `
		SELECT id, plan_id, customer_id, status, quantity,
			current_start, current_end, charge_at, start_at, end_at, ended_at,
			auth_attempts, total_count, paid_count, notes_json,
			created_at, updated_at
		FROM subscriptions
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]*entity.Subscription, 0)
	for rows.Next() {
		item := &entity.Subscription{}
		if err := scanSubscription(rows, item); err != nil {
			return nil, err
		}
		subs = append(subs, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

func scanSubscription(scan rowScanner, sub *entity.Subscription) error {
	var planID sql.NullString
	var customerID sql.NullString
	var currentStart sql.NullTime
	var currentEnd sql.NullTime
	var chargeAt sql.NullTime
	var startAt sql.NullTime
	var endAt sql.NullTime
	var endedAt sql.NullTime
	var totalCount sql.NullInt32
	var notesJSON string

	err := scan.Scan(
		&sub.ID,
		&planID,
		&customerID,
		&sub.Status,
		&sub.Quantity,
		&currentStart,
		&currentEnd,
		&chargeAt,
		&startAt,
		&endAt,
		&endedAt,
		&sub.AuthAttempts,
		&totalCount,
		&sub.PaidCount,
		&notesJSON,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return err
	}

	sub.PlanID = stringPtrFromNull(planID)
	sub.CustomerID = stringPtrFromNull(customerID)
	sub.CurrentStart = timePtrFromNull(currentStart)
	sub.CurrentEnd = timePtrFromNull(currentEnd)
	sub.ChargeAt = timePtrFromNull(chargeAt)
	sub.StartAt = timePtrFromNull(startAt)
	sub.EndAt = timePtrFromNull(endAt)
	sub.EndedAt = timePtrFromNull(endedAt)
	sub.TotalCount = int32PtrFromNull(totalCount)

	notes, err := parseNotes(notesJSON)
	if err != nil {
		return err
	}
	sub.Notes = notes

	return nil
}
