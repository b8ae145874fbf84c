package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"SMART_CART/go-backend/internal/models"
)

// ErrNotFound is returned when a cart or price row does not exist.
var ErrNotFound = errors.New("not found")

// ErrExists is returned when creating a cart whose session already has one.
var ErrExists = errors.New("already exists")

// CartStore persists cart records in Postgres. Items are stored as a JSONB
// document per cart, mirroring the document shape the API returns.
type CartStore struct {
	pool *pgxpool.Pool
}

func NewCartStore(pool *pgxpool.Pool) *CartStore {
	return &CartStore{pool: pool}
}

func (s *CartStore) Create(ctx context.Context, sessionID string) (*models.Cart, error) {
	now := time.Now().UTC()
	cart := &models.Cart{
		SessionID:  sessionID,
		Items:      []models.CartItem{},
		TotalItems: 0,
		TotalPrice: 0,
		Status:     models.CartStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO carts (session_id, items, total_items, total_price, status, created_at, updated_at)
		 VALUES ($1, '[]'::jsonb, 0, 0, $2, $3, $3)`,
		sessionID, cart.Status, now,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrExists
		}
		return nil, fmt.Errorf("create cart %s: %w", sessionID, err)
	}
	return cart, nil
}

func (s *CartStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	var cart models.Cart
	var itemsJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT session_id, items, total_items, total_price, status, created_at, updated_at
		 FROM carts WHERE session_id = $1`,
		sessionID,
	).Scan(&cart.SessionID, &itemsJSON, &cart.TotalItems, &cart.TotalPrice,
		&cart.Status, &cart.CreatedAt, &cart.UpdatedAt)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get cart %s: %w", sessionID, err)
	}

	if err := json.Unmarshal(itemsJSON, &cart.Items); err != nil {
		return nil, fmt.Errorf("decode cart items %s: %w", sessionID, err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return &cart, nil
}

// Update writes the full item list and totals back. The caller performed the
// read-modify-write; the store does not merge.
func (s *CartStore) Update(ctx context.Context, cart *models.Cart) error {
	itemsJSON, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart items %s: %w", cart.SessionID, err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE carts SET items = $2, total_items = $3, total_price = $4, status = $5, updated_at = $6
		 WHERE session_id = $1`,
		cart.SessionID, itemsJSON, cart.TotalItems, cart.TotalPrice,
		cart.Status, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("update cart %s: %w", cart.SessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Exists reports whether the session still has an active cart. The tracking
// worker polls this as its liveness check.
func (s *CartStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	var status string
	err := s.pool.QueryRow(ctx,
		`SELECT status FROM carts WHERE session_id = $1`, sessionID,
	).Scan(&status)
	if err == pgx.ErrNoRows {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("check cart %s: %w", sessionID, err)
	}
	return status == models.CartStatusActive, nil
}

// Complete marks the cart checked out. Idempotent.
func (s *CartStore) Complete(ctx context.Context, sessionID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE carts SET status = $2, updated_at = $3 WHERE session_id = $1`,
		sessionID, models.CartStatusCompleted, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("complete cart %s: %w", sessionID, err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM carts WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete cart %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
