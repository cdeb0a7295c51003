package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/storefront-br/pix-checkout-bridge/internal/core/domain"
)

// PostgresStore backs the tracking store with a shared table so webhooks
// can be handled by any replica. Rows carry an expires_at horizon; expired
// rows read as absent and the cleanup worker removes them.
type PostgresStore struct {
	db  *DB
	q   Executor
	ttl time.Duration
}

func NewPostgresStore(db *DB, ttl time.Duration) *PostgresStore {
	return &PostgresStore{
		db:  db,
		q:   db.Pool,
		ttl: ttl,
	}
}

// EnsureSchema creates the tracking table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS order_tracking (
			order_id     TEXT PRIMARY KEY,
			src          TEXT,
			sck          TEXT,
			utm_source   TEXT,
			utm_medium   TEXT,
			utm_campaign TEXT,
			utm_content  TEXT,
			utm_term     TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			expires_at   TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := s.q.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure order_tracking schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, orderID string, params domain.TrackingParams) error {
	query := `
		INSERT INTO order_tracking (
			order_id, src, sck, utm_source, utm_medium, utm_campaign, utm_content, utm_term,
			created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW() + make_interval(secs => $9))
		ON CONFLICT (order_id) DO UPDATE SET
			src = EXCLUDED.src,
			sck = EXCLUDED.sck,
			utm_source = EXCLUDED.utm_source,
			utm_medium = EXCLUDED.utm_medium,
			utm_campaign = EXCLUDED.utm_campaign,
			utm_content = EXCLUDED.utm_content,
			utm_term = EXCLUDED.utm_term,
			created_at = NOW(),
			expires_at = EXCLUDED.expires_at
	`

	_, err := s.q.Exec(ctx, query,
		orderID,
		params.Src,
		params.Sck,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign,
		params.UTMContent,
		params.UTMTerm,
		s.ttl.Seconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to save tracking params: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, orderID string) (domain.TrackingParams, bool, error) {
	query := `
		SELECT src, sck, utm_source, utm_medium, utm_campaign, utm_content, utm_term
		FROM order_tracking
		WHERE order_id = $1 AND expires_at > NOW()
	`

	var params domain.TrackingParams
	err := s.q.QueryRow(ctx, query, orderID).Scan(
		&params.Src,
		&params.Sck,
		&params.UTMSource,
		&params.UTMMedium,
		&params.UTMCampaign,
		&params.UTMContent,
		&params.UTMTerm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TrackingParams{}, false, nil
		}
		return domain.TrackingParams{}, false, fmt.Errorf("failed to get tracking params: %w", err)
	}
	return params, true, nil
}

func (s *PostgresStore) Delete(ctx context.Context, orderID string) error {
	query := `DELETE FROM order_tracking WHERE order_id = $1`

	if _, err := s.q.Exec(ctx, query, orderID); err != nil {
		return fmt.Errorf("failed to delete tracking params: %w", err)
	}
	return nil
}

// DeleteExpired removes rows past their expiry horizon. The olderThan
// argument tightens the cutoff below the stored expires_at when a shorter
// retention is requested.
func (s *PostgresStore) DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		DELETE FROM order_tracking
		WHERE expires_at <= NOW() OR created_at < NOW() - make_interval(secs => $1)
	`

	tag, err := s.q.Exec(ctx, query, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tracking params: %w", err)
	}
	return tag.RowsAffected(), nil
}
