package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"SMART_CART/go-backend/internal/models"
)

// Catalog looks up product prices, by barcode or by a fuzzy label match.
type Catalog struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

func (c *Catalog) GetPrice(ctx context.Context, barcode string) (*models.PriceInfo, error) {
	var info models.PriceInfo
	err := c.pool.QueryRow(ctx,
		`SELECT price, currency, product_name FROM prices WHERE barcode = $1`,
		barcode,
	).Scan(&info.Price, &info.Currency, &info.ProductName)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("price lookup %s: %w", barcode, err)
	}
	return &info, nil
}

// GetPriceByLabel matches a raw detection label against product names.
// Partial, case-insensitive; the cheapest match wins so a noisy label
// cannot inflate the cart.
func (c *Catalog) GetPriceByLabel(ctx context.Context, label string) (*models.PriceInfo, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrNotFound
	}

	var info models.PriceInfo
	err := c.pool.QueryRow(ctx,
		`SELECT price, currency, product_name FROM prices
		 WHERE product_name ILIKE '%' || $1 || '%'
		 ORDER BY price ASC LIMIT 1`,
		label,
	).Scan(&info.Price, &info.Currency, &info.ProductName)

	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("price lookup by label %q: %w", label, err)
	}
	return &info, nil
}

// UpsertPrice creates or replaces a catalog entry.
func (c *Catalog) UpsertPrice(ctx context.Context, barcode string, info models.PriceInfo) error {
	_, err := c.pool.Exec(ctx,
		`INSERT INTO prices (barcode, price, currency, product_name, last_updated)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (barcode) DO UPDATE
		 SET price = EXCLUDED.price, currency = EXCLUDED.currency,
		     product_name = EXCLUDED.product_name, last_updated = now()`,
		barcode, info.Price, info.Currency, info.ProductName,
	)
	if err != nil {
		return fmt.Errorf("upsert price %s: %w", barcode, err)
	}
	return nil
}
