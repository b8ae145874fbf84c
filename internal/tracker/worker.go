package tracker

import (
	"context"
	"log"
	"sync"
	"time"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/services"
)

// Detector produces labeled bounding boxes for a single frame.
type Detector interface {
	Detect(ctx context.Context, frame *models.Frame) ([]models.Detection, error)
}

// EventResolver turns a raw cart event into a product name, barcode and
// price. The second return value reports that resolution fell past the
// similarity index to a label-based or default tier.
type EventResolver interface {
	Resolve(ctx context.Context, ev *models.CartEvent) (models.ResolvedProduct, bool)
}

// CartApplier commits a resolved event to the cart record.
type CartApplier interface {
	Apply(ctx context.Context, ev *models.CartEvent, product models.ResolvedProduct, imageURL string) error
}

// SessionStore is the slice of the cart store the worker needs for
// lifecycle decisions.
type SessionStore interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
	Complete(ctx context.Context, sessionID string) error
}

// CropWriter archives event crops. Failures never block event processing.
type CropWriter interface {
	Store(sessionID string, imageData []byte, action string) (string, error)
}

// WorkerConfig bundles the per-worker loop settings.
type WorkerConfig struct {
	PollTimeout   time.Duration
	LivenessEvery int
	MinConfidence float64
	Approved      map[string]bool
}

// Worker owns the full tracking pipeline for one session: it pulls
// frames from its source, runs detection, feeds the debounce engine and
// applies confirmed events to the cart. All tracking state is private to
// the worker; the cart record is the only shared resource it touches.
type Worker struct {
	sessionID string
	source    FrameSource
	detector  Detector
	engine    *Engine
	resolver  EventResolver
	cart      CartApplier
	sessions  SessionStore
	crops     CropWriter
	metrics   *services.Metrics
	cfg       WorkerConfig

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewWorker(sessionID string, source FrameSource, detector Detector, engine *Engine,
	resolver EventResolver, cart CartApplier, sessions SessionStore, crops CropWriter,
	metrics *services.Metrics, cfg WorkerConfig) *Worker {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 50 * time.Millisecond
	}
	if cfg.LivenessEvery <= 0 {
		cfg.LivenessEvery = 30
	}
	return &Worker{
		sessionID: sessionID,
		source:    source,
		detector:  detector,
		engine:    engine,
		resolver:  resolver,
		cart:      cart,
		sessions:  sessions,
		crops:     crops,
		metrics:   metrics,
		cfg:       cfg,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Run drives the session loop until the source ends, Stop is called, the
// session disappears from the store, or the loop panics. On every exit
// path the session is marked complete so it cannot appear to still be
// tracking.
func (w *Worker) Run() {
	defer close(w.done)
	defer w.metrics.WorkerStopped()
	defer w.completeSession()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Worker for session %s crashed: %v", w.sessionID, r)
		}
	}()
	w.metrics.WorkerStarted()
	log.Printf("Tracking worker started for session %s", w.sessionID)

	polls := 0
	for {
		select {
		case <-w.stop:
			log.Printf("Tracking worker for session %s stopping", w.sessionID)
			return
		default:
		}

		frame, open := w.source.Next(w.cfg.PollTimeout)
		if !open {
			log.Printf("Frame source for session %s ended", w.sessionID)
			return
		}

		polls++
		if polls%w.cfg.LivenessEvery == 0 && !w.sessionAlive() {
			log.Printf("Session %s no longer active, worker exiting", w.sessionID)
			return
		}

		if frame == nil {
			continue
		}
		w.processFrame(frame)
	}
}

func (w *Worker) processFrame(frame *models.Frame) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	detections, err := w.detector.Detect(ctx, frame)
	if err != nil {
		w.metrics.IncrementDetectorErrors()
		log.Printf("Detection failed for session %s frame %d: %v", w.sessionID, frame.SequenceNumber, err)
		return
	}
	w.metrics.IncrementFrames()

	events := w.engine.Process(frame, w.filterDetections(detections))
	for _, ev := range events {
		ev.SessionID = w.sessionID
		w.handleEvent(ctx, ev)
	}
}

func (w *Worker) handleEvent(ctx context.Context, ev *models.CartEvent) {
	w.metrics.IncrementEvents(ev.Action)
	log.Printf("Cart event: session=%s label=%s action=%s confidence=%.2f",
		w.sessionID, ev.Label, ev.Action, ev.Confidence)

	// Low-confidence adds are tracked but withheld from the cart; the
	// shopper confirms them through the UI instead.
	if ev.Action == models.ActionAdd && ev.Confidence < w.cfg.MinConfidence {
		w.metrics.IncrementLowConfidenceEvents()
		log.Printf("Add for %q needs confirmation: confidence %.2f below %.2f",
			ev.Label, ev.Confidence, w.cfg.MinConfidence)
		return
	}

	product, fellBack := w.resolver.Resolve(ctx, ev)
	if fellBack {
		w.metrics.IncrementFallbacks()
	}

	imageURL := ""
	if w.crops != nil && len(ev.Crop) > 0 {
		url, err := w.crops.Store(w.sessionID, ev.Crop, ev.Action)
		if err != nil {
			w.metrics.IncrementCropFailures()
			log.Printf("Failed to store crop for session %s: %v", w.sessionID, err)
		} else {
			imageURL = url
		}
	}

	if err := w.cart.Apply(ctx, ev, product, imageURL); err != nil {
		// Local tracking state already reflects the transition; the
		// cart record now diverges from it until a later write lands.
		w.metrics.IncrementCartWriteFailures()
		log.Printf("Cart write failed for session %s (%s %s): %v", w.sessionID, ev.Action, ev.Label, err)
	}
}

// filterDetections applies the label allowlist only. Confidence is not a
// tracking concern: low-confidence detections still drive tracks, and the
// threshold is applied when a confirmed event reaches the cart.
func (w *Worker) filterDetections(detections []models.Detection) []models.Detection {
	if len(w.cfg.Approved) == 0 {
		return detections
	}
	kept := detections[:0]
	for _, d := range detections {
		if w.cfg.Approved[d.Label] {
			kept = append(kept, d)
		}
	}
	return kept
}

func (w *Worker) sessionAlive() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	alive, err := w.sessions.Exists(ctx, w.sessionID)
	if err != nil {
		// Store hiccups are not evidence the session ended.
		log.Printf("Liveness check failed for session %s: %v", w.sessionID, err)
		return true
	}
	return alive
}

func (w *Worker) completeSession() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := w.sessions.Complete(ctx, w.sessionID); err != nil {
		log.Printf("Failed to mark session %s complete: %v", w.sessionID, err)
	}
}

// Stop signals the loop to exit. It does not wait; use Await for that.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Await blocks until the worker loop has fully exited.
func (w *Worker) Await() {
	<-w.done
}

// Done exposes completion for select-based callers.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Source returns the worker's frame source so the ingestion layer can
// push frames into it.
func (w *Worker) Source() FrameSource {
	return w.source
}
