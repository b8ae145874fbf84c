package tracker

import (
	"errors"
	"log"
	"sync"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/services"
)

var ErrNoWorker = errors.New("no active worker for session")

// Registry supervises one tracking worker per session. Start is the only
// way a worker comes into existence, and it holds the registry lock for
// the whole check-and-insert, so concurrent starts for the same session
// cannot race two workers into life.
type Registry struct {
	detector Detector
	resolver EventResolver
	cart     CartApplier
	sessions SessionStore
	crops    CropWriter
	metrics  *services.Metrics

	engineCfg EngineConfig
	workerCfg WorkerConfig

	mu      sync.Mutex
	workers map[string]*Worker
}

func NewRegistry(detector Detector, resolver EventResolver, cart CartApplier,
	sessions SessionStore, crops CropWriter, metrics *services.Metrics,
	engineCfg EngineConfig, workerCfg WorkerConfig) *Registry {
	return &Registry{
		detector:  detector,
		resolver:  resolver,
		cart:      cart,
		sessions:  sessions,
		crops:     crops,
		metrics:   metrics,
		engineCfg: engineCfg,
		workerCfg: workerCfg,
		workers:   make(map[string]*Worker),
	}
}

// Start launches a worker for the session fed by the given source. If a
// worker is already running for the session the call is a no-op and the
// existing worker is returned; the caller's source is not adopted.
func (r *Registry) Start(sessionID string, source FrameSource) (*Worker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if w, ok := r.workers[sessionID]; ok {
		return w, false
	}

	engine := NewEngine(r.engineCfg)
	w := NewWorker(sessionID, source, r.detector, engine, r.resolver, r.cart,
		r.sessions, r.crops, r.metrics, r.workerCfg)
	r.workers[sessionID] = w

	go func() {
		w.Run()
		r.remove(sessionID, w)
	}()
	return w, true
}

func (r *Registry) remove(sessionID string, w *Worker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Only clear the slot if it still belongs to this worker; a newer
	// worker may have been started after this one exited.
	if r.workers[sessionID] == w {
		delete(r.workers, sessionID)
	}
}

func (r *Registry) get(sessionID string) (*Worker, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[sessionID]
	return w, ok
}

// EnqueueFrame routes a pushed frame to the session's worker. Returns
// false when the frame was dropped because the worker's buffer is full.
func (r *Registry) EnqueueFrame(sessionID string, frame *models.Frame) (bool, error) {
	w, ok := r.get(sessionID)
	if !ok {
		return false, ErrNoWorker
	}
	ps, ok := w.Source().(*PushSource)
	if !ok {
		return false, errors.New("session does not accept pushed frames")
	}
	if !ps.Enqueue(frame) {
		r.metrics.IncrementDropped()
		return false, nil
	}
	return true, nil
}

// Stop signals the session's worker and waits for it to exit.
func (r *Registry) Stop(sessionID string) error {
	w, ok := r.get(sessionID)
	if !ok {
		return ErrNoWorker
	}
	w.Stop()
	w.Await()
	return nil
}

// Await blocks until the session's worker has exited. Returns
// immediately if no worker is running.
func (r *Registry) Await(sessionID string) {
	if w, ok := r.get(sessionID); ok {
		w.Await()
	}
}

// Active reports whether a worker is currently running for the session.
func (r *Registry) Active(sessionID string) bool {
	_, ok := r.get(sessionID)
	return ok
}

// StopAll shuts down every worker, used on server shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	workers := make([]*Worker, 0, len(r.workers))
	for _, w := range r.workers {
		workers = append(workers, w)
	}
	r.mu.Unlock()

	for _, w := range workers {
		w.Stop()
	}
	for _, w := range workers {
		w.Await()
	}
	log.Printf("All tracking workers stopped")
}
