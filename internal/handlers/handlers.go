package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/services"
	"SMART_CART/go-backend/internal/store"
	"SMART_CART/go-backend/internal/tracker"
)

// Carts is the slice of the cart store the API needs.
type Carts interface {
	Create(ctx context.Context, sessionID string) (*models.Cart, error)
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Complete(ctx context.Context, sessionID string) error
}

// Handler serves the cart lifecycle API and the frame ingestion endpoint.
type Handler struct {
	carts    Carts
	registry *tracker.Registry
	detector *services.DetectorClient
	index    *services.IndexClient
	metrics  *services.Metrics
	queueCap int
}

func New(carts Carts, registry *tracker.Registry, detector *services.DetectorClient,
	index *services.IndexClient, metrics *services.Metrics, queueCap int) *Handler {
	return &Handler{
		carts:    carts,
		registry: registry,
		detector: detector,
		index:    index,
		metrics:  metrics,
		queueCap: queueCap,
	}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/carts", h.CreateCart)
	mux.HandleFunc("GET /api/carts/{session_id}", h.GetCart)
	mux.HandleFunc("PUT /api/carts/{session_id}/checkout", h.Checkout)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/metrics", h.Metrics)
	mux.HandleFunc("/ws", h.HandleWebSocket)
}

func enableCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")
}

// CreateCart provisions a cart record and launches its tracking worker.
// The worker consumes frames pushed to /ws for the same session.
func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)

	var req models.CreateCartRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.carts.Create(ctx, sessionID)
	if errors.Is(err, store.ErrExists) {
		http.Error(w, "Cart already exists for this session", http.StatusConflict)
		return
	} else if err != nil {
		log.Printf("CreateCart error: %v", err)
		http.Error(w, "Failed to create cart", http.StatusInternalServerError)
		return
	}

	source := tracker.NewPushSource(h.queueCap)
	if _, started := h.registry.Start(sessionID, source); !started {
		// A worker already exists for this session; its source stays in
		// place and the one we just made is discarded.
		source.Close()
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cart)
	log.Printf("Cart created: session=%s", sessionID)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	sessionID := r.PathValue("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := h.carts.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("GetCart error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(cart)
}

// Checkout closes the session. The cart is marked complete first so the
// worker's liveness poll sees it gone even if the explicit stop below
// were to fail.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	sessionID := r.PathValue("session_id")
	if sessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cart, err := h.carts.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Cart not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Printf("Checkout error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.carts.Complete(ctx, sessionID); err != nil {
		log.Printf("Checkout error: %v", err)
		http.Error(w, "Failed to complete cart", http.StatusInternalServerError)
		return
	}

	if err := h.registry.Stop(sessionID); err != nil && !errors.Is(err, tracker.ErrNoWorker) {
		log.Printf("Failed to stop worker for session %s: %v", sessionID, err)
	}

	cart.Status = models.CartStatusCompleted
	json.NewEncoder(w).Encode(cart)
	log.Printf("Cart checked out: session=%s items=%d total=%.2f", sessionID, cart.TotalItems, cart.TotalPrice)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)

	detectorHealthy := h.detector != nil && h.detector.HealthCheck()
	indexHealthy := h.index != nil && h.index.HealthCheck()

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":          "healthy",
		"detector":        detectorHealthy,
		"index":           indexHealthy,
		"active_workers":  h.metrics.GetActiveWorkers(),
		"total_processed": h.metrics.GetTotalFrames(),
		"total_errors":    h.metrics.GetTotalErrors(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	enableCORS(w)
	json.NewEncoder(w).Encode(h.metrics.Snapshot())
}
