package cart

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/store"
)

type fakeStore struct {
	mu      sync.Mutex
	carts   map[string]*models.Cart
	updates int
	fail    error
}

func newFakeStore(sessionIDs ...string) *fakeStore {
	s := &fakeStore{carts: make(map[string]*models.Cart)}
	for _, id := range sessionIDs {
		s.carts[id] = &models.Cart{SessionID: id, Status: models.CartStatusActive}
	}
	return s
}

func (s *fakeStore) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return nil, store.ErrNotFound
	}
	// Hand out a copy, like a remote store would.
	cp := *cart
	cp.Items = append([]models.CartItem(nil), cart.Items...)
	return &cp, nil
}

func (s *fakeStore) Update(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.updates++
	s.carts[cart.SessionID] = cart
	return nil
}

func (s *fakeStore) cart(sessionID string) *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[sessionID]
}

func addEvent(label string) *models.CartEvent {
	return &models.CartEvent{SessionID: "sess-1", Label: label, Action: models.ActionAdd, Confidence: 0.9}
}

func removeEvent(label string) *models.CartEvent {
	return &models.CartEvent{SessionID: "sess-1", Label: label, Action: models.ActionRemove}
}

var apple = models.ResolvedProduct{ProductName: "Apple", Barcode: "123", Price: 0.89}

func TestAddCreatesLine(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	if err := m.Apply(context.Background(), addEvent("apple"), apple, "/crops/a.jpg"); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	cart := s.cart("sess-1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected one line, got %d", len(cart.Items))
	}
	item := cart.Items[0]
	if item.Quantity != 1 || item.NormalizedLabel != "apple" || item.Price != 0.89 {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.SoundTrigger != models.SoundIncrease {
		t.Errorf("expected increase sound trigger, got %q", item.SoundTrigger)
	}
	if cart.TotalItems != 1 || cart.TotalPrice != 0.89 {
		t.Errorf("unexpected totals: items=%d price=%.2f", cart.TotalItems, cart.TotalPrice)
	}
}

func TestRepeatedAddsIncrementQuantity(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	for i := 0; i < 3; i++ {
		if err := m.Apply(context.Background(), addEvent("apple"), apple, ""); err != nil {
			t.Fatalf("Apply failed: %v", err)
		}
	}

	cart := s.cart("sess-1")
	if len(cart.Items) != 1 {
		t.Fatalf("repeated adds must not create duplicate lines, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.TotalItems != 3 {
		t.Errorf("expected total_items 3, got %d", cart.TotalItems)
	}
}

func TestNormalizedVariantsShareOneLine(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	for _, label := range []string{"Banana", "banana_type_2", "BANANA_variant_red"} {
		product := models.ResolvedProduct{ProductName: "Banana", Price: 0.59}
		if err := m.Apply(context.Background(), addEvent(label), product, ""); err != nil {
			t.Fatalf("Apply(%q) failed: %v", label, err)
		}
	}

	cart := s.cart("sess-1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected variants to group on one line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].NormalizedLabel != "banana" {
		t.Errorf("unexpected normalized label %q", cart.Items[0].NormalizedLabel)
	}
}

func TestRemoveDecrementsThenDeletes(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	m.Apply(context.Background(), addEvent("apple"), apple, "")
	m.Apply(context.Background(), addEvent("apple"), apple, "")

	if err := m.Apply(context.Background(), removeEvent("apple"), apple, ""); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	cart := s.cart("sess-1")
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("expected decrement to quantity 1, got %+v", cart.Items)
	}
	if cart.Items[0].SoundTrigger != models.SoundDecrease {
		t.Errorf("expected decrease sound trigger, got %q", cart.Items[0].SoundTrigger)
	}

	if err := m.Apply(context.Background(), removeEvent("apple"), apple, ""); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	cart = s.cart("sess-1")
	if len(cart.Items) != 0 {
		t.Fatalf("quantity 1 remove must delete the line, got %+v", cart.Items)
	}
	if cart.TotalItems != 0 || math.Abs(cart.TotalPrice) > 1e-9 {
		t.Errorf("unexpected totals after removes: items=%d price=%f", cart.TotalItems, cart.TotalPrice)
	}
}

func TestRemoveAbsentLabelIsNoop(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	if err := m.Apply(context.Background(), removeEvent("apple"), apple, ""); err != nil {
		t.Fatalf("removing an absent label must not error: %v", err)
	}
	if s.updates != 0 {
		t.Errorf("a no-op remove must not write the cart, got %d updates", s.updates)
	}
}

func TestRemoveUsesStoredPrice(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	m.Apply(context.Background(), addEvent("apple"), apple, "")

	// The removal resolved to a different price; the stored line price
	// must drive the total, so the cart lands back at zero.
	repriced := models.ResolvedProduct{ProductName: "Apple", Barcode: "123", Price: 1.49}
	if err := m.Apply(context.Background(), removeEvent("apple"), repriced, ""); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	cart := s.cart("sess-1")
	if math.Abs(cart.TotalPrice) > 1e-9 {
		t.Errorf("expected total back at zero, got %f", cart.TotalPrice)
	}
}

func TestBarcodeFallbackLookup(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	m.Apply(context.Background(), addEvent("apple"), apple, "")

	// Different label, but the same barcode: the mutation must land on
	// the existing line via the barcode fallback.
	other := models.ResolvedProduct{ProductName: "Apple", Barcode: "123", Price: 0.89}
	if err := m.Apply(context.Background(), addEvent("green_fruit"), other, ""); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	cart := s.cart("sess-1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected barcode match to reuse the line, got %d lines", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", cart.Items[0].Quantity)
	}
}

func TestApplyPropagatesStoreErrors(t *testing.T) {
	s := newFakeStore("sess-1")
	s.fail = errors.New("connection reset")
	m := NewMutator(s)

	if err := m.Apply(context.Background(), addEvent("apple"), apple, ""); err == nil {
		t.Fatal("expected the write failure to propagate")
	}
}

func TestApplyMissingCart(t *testing.T) {
	m := NewMutator(newFakeStore())

	err := m.Apply(context.Background(), addEvent("apple"), apple, "")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConcurrentMutationsStayConsistent(t *testing.T) {
	s := newFakeStore("sess-1")
	m := NewMutator(s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Apply(context.Background(), addEvent("apple"), apple, "")
		}()
	}
	wg.Wait()

	cart := s.cart("sess-1")
	if len(cart.Items) != 1 {
		t.Fatalf("expected one line under concurrency, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 20 || cart.TotalItems != 20 {
		t.Errorf("lost updates: quantity=%d total_items=%d", cart.Items[0].Quantity, cart.TotalItems)
	}
}
