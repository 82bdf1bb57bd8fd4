package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/apexneural-PraveenJogi/razorpay/app/entity"
)

// ErrWebhookEventExists signals a duplicate provider event id. Concurrent
// deliveries of the same event race to a single insert; losers get this.
var ErrWebhookEventExists = errors.New("webhook event already exists")

type WebhookEventRepository struct {
	db DBTX
}

func NewWebhookEventRepository(db DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{db: db}
}

func (r *WebhookEventRepository) Create(ctx context.Context, event *entity.WebhookEvent) error {
	query := `
		INSERT INTO webhook_events (
			id, entity, event_type, account_id, payload_json, signature_verified, processed, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Entity,
		event.EventType,
		nullableStringValue(event.AccountID),
		event.PayloadJSON,
		event.SignatureVerified,
		event.Processed,
		event.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrWebhookEventExists
		}
		return err
	}

	return nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, id string) error {
	query := `UPDATE webhook_events SET processed = TRUE WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *WebhookEventRepository) FindByID(ctx context.Context, id string) (*entity.WebhookEvent, error) {
	query := `
		SELECT id, entity, event_type, account_id, payload_json, signature_verified, processed, created_at
		FROM webhook_events
		WHERE id = ?
	`

	event := &entity.WebhookEvent{}
	if err := scanWebhookEvent(r.db.QueryRowContext(ctx, query, id), event); err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *WebhookEventRepository) List(ctx context.Context, limit, offset int32) ([]*entity.WebhookEvent, error) {
	query := `
		SELECT id, entity, event_type, account_id, payload_json, signature_verified, processed, created_at
		FROM webhook_events
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*entity.WebhookEvent, 0)
	for rows.Next() {
		item := &entity.WebhookEvent{}
		if err := scanWebhookEvent(rows, item); err != nil {
			return nil, err
		}
		events = append(events, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func scanWebhookEvent(scan rowScanner, event *entity.WebhookEvent) error {
	var accountID sql.NullString
	var createdAt time.Time

	err := scan.Scan(
		&event.ID,
		&event.Entity,
		&event.EventType,
		&accountID,
		&event.PayloadJSON,
		&event.SignatureVerified,
		&event.Processed,
		&createdAt,
	)
	if err != nil {
		return err
	}

	event.AccountID = stringPtrFromNull(accountID)
	event.CreatedAt = createdAt

	return nil
}
