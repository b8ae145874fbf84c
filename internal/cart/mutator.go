package cart

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/resolver"
)

// Store is the external cart record surface the mutator writes through.
// The mutator reads, modifies and writes back; it never caches a cart
// across mutations.
type Store interface {
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Update(ctx context.Context, cart *models.Cart) error
}

// Mutator applies resolved add/remove events to cart records, grouping
// items by normalized label and keeping quantities and totals consistent.
// Mutations for one session are serialized with a per-session lock so API
// writes can never interleave with the tracking worker's.
type Mutator struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMutator(store Store) *Mutator {
	return &Mutator{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (m *Mutator) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[sessionID] = l
	}
	return l
}

// findItem locates an existing cart line, by normalized label first and by
// exact barcode as the fallback. Returns -1 when nothing matches.
func findItem(items []models.CartItem, normalized, barcode string) int {
	for i := range items {
		if items[i].NormalizedLabel == normalized {
			return i
		}
	}
	if barcode != "" {
		for i := range items {
			if items[i].Barcode == barcode {
				return i
			}
		}
	}
	return -1
}

// Apply performs one read-modify-write cart mutation for a confirmed event.
func (m *Mutator) Apply(ctx context.Context, ev *models.CartEvent, product models.ResolvedProduct, imageURL string) error {
	lock := m.sessionLock(ev.SessionID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := m.store.Get(ctx, ev.SessionID)
	if err != nil {
		return fmt.Errorf("load cart %s: %w", ev.SessionID, err)
	}

	switch ev.Action {
	case models.ActionAdd:
		m.applyAdd(cart, ev, product, imageURL)
	case models.ActionRemove:
		if !m.applyRemove(cart, ev, product) {
			// Removing an absent label is not an error.
			log.Printf("Remove for %q ignored, not in cart %s", ev.Label, ev.SessionID)
			return nil
		}
	default:
		return fmt.Errorf("unknown cart action %q", ev.Action)
	}

	return m.store.Update(ctx, cart)
}

func (m *Mutator) applyAdd(cart *models.Cart, ev *models.CartEvent, product models.ResolvedProduct, imageURL string) {
	now := time.Now().UTC()
	normalized := resolver.NormalizeLabel(ev.Label)

	if idx := findItem(cart.Items, normalized, product.Barcode); idx >= 0 {
		item := &cart.Items[idx]
		item.Quantity++
		item.UpdatedAt = now
		item.Action = models.ActionAdd
		item.SoundTrigger = models.SoundIncrease
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ItemID:          fmt.Sprintf("%s_%s", normalized, uuid.NewString()),
			Label:           ev.Label,
			NormalizedLabel: normalized,
			Barcode:         product.Barcode,
			ProductName:     product.ProductName,
			Price:           product.Price,
			Quantity:        1,
			Confidence:      ev.Confidence,
			ImageURL:        imageURL,
			CreatedAt:       now,
			UpdatedAt:       now,
			Action:          models.ActionAdd,
			SoundTrigger:    models.SoundIncrease,
		})
	}

	cart.TotalItems++
	cart.TotalPrice += product.Price
}

// applyRemove decrements or deletes the matching line. Totals use the
// stored item price, not the event's freshly resolved one, so repeated
// resolution drift cannot skew the cart total.
func (m *Mutator) applyRemove(cart *models.Cart, ev *models.CartEvent, product models.ResolvedProduct) bool {
	normalized := resolver.NormalizeLabel(ev.Label)
	idx := findItem(cart.Items, normalized, product.Barcode)
	if idx < 0 {
		return false
	}

	storedPrice := cart.Items[idx].Price

	if cart.Items[idx].Quantity > 1 {
		item := &cart.Items[idx]
		item.Quantity--
		item.UpdatedAt = time.Now().UTC()
		item.Action = models.ActionRemove
		item.SoundTrigger = models.SoundDecrease
	} else {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	}

	cart.TotalItems--
	cart.TotalPrice -= storedPrice
	return true
}
