package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/services"
)

type fakeDetector struct {
	mu    sync.Mutex
	dets  []models.Detection
	err   error
	calls int
}

func (d *fakeDetector) Detect(ctx context.Context, frame *models.Frame) ([]models.Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return d.dets, nil
}

type fakeResolver struct{}

func (r *fakeResolver) Resolve(ctx context.Context, ev *models.CartEvent) (models.ResolvedProduct, bool) {
	return models.ResolvedProduct{ProductName: "Apple", Barcode: "123", Price: 0.89}, false
}

type fakeApplier struct {
	mu     sync.Mutex
	err    error
	events []*models.CartEvent
}

func (a *fakeApplier) Apply(ctx context.Context, ev *models.CartEvent, product models.ResolvedProduct, imageURL string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
	return a.err
}

func (a *fakeApplier) applied() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.events)
}

type fakeSessions struct {
	mu        sync.Mutex
	alive     bool
	completed int
}

func (s *fakeSessions) Exists(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive, nil
}

func (s *fakeSessions) Complete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed++
	return nil
}

func (s *fakeSessions) setAlive(alive bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alive = alive
}

func (s *fakeSessions) completions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func testWorker(source FrameSource, detector Detector, applier CartApplier, sessions SessionStore, metrics *services.Metrics) *Worker {
	return NewWorker("sess-1", source, detector, NewEngine(testEngineConfig()),
		&fakeResolver{}, applier, sessions, nil, metrics,
		WorkerConfig{PollTimeout: 5 * time.Millisecond, LivenessEvery: 1})
}

func TestWorkerExitsWhenSessionGone(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: false}
	w := testWorker(source, &fakeDetector{}, &fakeApplier{}, sessions, services.NewMetrics())

	go w.Run()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit after the session disappeared")
	}
	if sessions.completions() == 0 {
		t.Error("worker must mark the session complete on exit")
	}
}

func TestWorkerStopsOnSignal(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: true}
	w := testWorker(source, &fakeDetector{}, &fakeApplier{}, sessions, services.NewMetrics())

	go w.Run()
	w.Stop()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit after Stop")
	}
	if sessions.completions() == 0 {
		t.Error("worker must mark the session complete on exit")
	}
}

func TestWorkerExitsWhenSourceEnds(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: true}
	w := testWorker(source, &fakeDetector{}, &fakeApplier{}, sessions, services.NewMetrics())

	go w.Run()
	source.Close()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not exit after the source closed")
	}
}

func TestWorkerSkipsFrameOnDetectorError(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: true}
	detector := &fakeDetector{err: errors.New("inference backend down")}
	metrics := services.NewMetrics()
	w := testWorker(source, detector, &fakeApplier{}, sessions, metrics)

	go w.Run()
	for i := 0; i < 3; i++ {
		source.Enqueue(&models.Frame{Data: []byte("frame"), SequenceNumber: int32(i)})
	}

	deadline := time.Now().Add(time.Second)
	for metrics.GetTotalErrors() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if got := metrics.GetTotalErrors(); got != 3 {
		t.Fatalf("expected 3 detector errors, got %d", got)
	}
	if got := metrics.GetTotalFrames(); got != 0 {
		t.Errorf("failed frames must not count as processed, got %d", got)
	}

	// The loop must survive the failures.
	select {
	case <-w.Done():
		t.Fatal("worker exited on a per-frame detector failure")
	default:
	}
	w.Stop()
	w.Await()
}

// driveToEvent pushes downward-moving apple frames until the engine
// confirms an add and the applier sees it.
func driveToEvent(t *testing.T, source *PushSource, detector *fakeDetector, applier *fakeApplier) {
	t.Helper()
	for i := 0; i < 15; i++ {
		detector.mu.Lock()
		detector.dets = []models.Detection{detection("apple", 100+i*5)}
		detector.mu.Unlock()
		if !source.Enqueue(&models.Frame{SequenceNumber: int32(i)}) {
			t.Fatal("frame queue unexpectedly full")
		}
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			detector.mu.Lock()
			consumed := detector.calls > i
			detector.mu.Unlock()
			if consumed {
				break
			}
			time.Sleep(time.Millisecond)
		}
	}
	deadline := time.Now().Add(time.Second)
	for applier.applied() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWorkerAppliesConfirmedEvents(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: true}
	detector := &fakeDetector{}
	applier := &fakeApplier{}
	w := testWorker(source, detector, applier, sessions, services.NewMetrics())

	go w.Run()
	driveToEvent(t, source, detector, applier)
	w.Stop()
	w.Await()

	if applier.applied() != 1 {
		t.Fatalf("expected one applied event, got %d", applier.applied())
	}
	ev := applier.events[0]
	if ev.Action != models.ActionAdd || ev.Label != "apple" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.SessionID != "sess-1" {
		t.Errorf("event not stamped with session, got %q", ev.SessionID)
	}
}

func TestWorkerSurvivesCartWriteFailure(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: true}
	detector := &fakeDetector{}
	applier := &fakeApplier{err: errors.New("cart store unavailable")}
	metrics := services.NewMetrics()
	w := testWorker(source, detector, applier, sessions, metrics)

	go w.Run()
	driveToEvent(t, source, detector, applier)

	if got := metrics.GetCartWriteFailures(); got != 1 {
		t.Errorf("expected the divergence counter at 1, got %d", got)
	}
	select {
	case <-w.Done():
		t.Fatal("worker exited on a cart write failure")
	default:
	}
	w.Stop()
	w.Await()
}

func TestWorkerWithholdsLowConfidenceAdds(t *testing.T) {
	source := NewPushSource(8)
	sessions := &fakeSessions{alive: true}
	detector := &fakeDetector{}
	applier := &fakeApplier{}
	metrics := services.NewMetrics()
	w := NewWorker("sess-1", source, detector, NewEngine(testEngineConfig()),
		&fakeResolver{}, applier, sessions, nil, metrics,
		WorkerConfig{PollTimeout: 5 * time.Millisecond, LivenessEvery: 1000, MinConfidence: 0.5})

	go w.Run()

	// Confident downward motion, but every detection scores below the
	// confidence threshold. Tracking must still confirm the add; the
	// cart write must be withheld.
	for i := 0; i < 15; i++ {
		detector.mu.Lock()
		d := detection("apple", 100+i*5)
		d.Confidence = 0.3
		detector.dets = []models.Detection{d}
		detector.mu.Unlock()
		if !source.Enqueue(&models.Frame{SequenceNumber: int32(i)}) {
			t.Fatal("frame queue unexpectedly full")
		}
		deadline := time.Now().Add(time.Second)
		for time.Now().Before(deadline) {
			detector.mu.Lock()
			consumed := detector.calls > i
			detector.mu.Unlock()
			if consumed {
				break
			}
			time.Sleep(time.Millisecond)
		}
	}

	deadline := time.Now().Add(time.Second)
	for metrics.GetLowConfidenceEvents() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Stop()
	w.Await()

	if got := metrics.GetLowConfidenceEvents(); got != 1 {
		t.Fatalf("expected one withheld event, got %d", got)
	}
	if applier.applied() != 0 {
		t.Errorf("low-confidence add must not reach the cart, got %d writes", applier.applied())
	}
}

func TestRegistryStartIsIdempotent(t *testing.T) {
	sessions := &fakeSessions{alive: true}
	r := NewRegistry(&fakeDetector{}, &fakeResolver{}, &fakeApplier{}, sessions, nil,
		services.NewMetrics(), testEngineConfig(),
		WorkerConfig{PollTimeout: 5 * time.Millisecond, LivenessEvery: 1000})

	w1, started := r.Start("sess-1", NewPushSource(8))
	if !started {
		t.Fatal("first Start must launch a worker")
	}
	w2, started := r.Start("sess-1", NewPushSource(8))
	if started {
		t.Error("second Start for the same session must be a no-op")
	}
	if w1 != w2 {
		t.Error("second Start must return the existing worker")
	}

	r.StopAll()
}

func TestRegistryConcurrentStartsOneWorker(t *testing.T) {
	sessions := &fakeSessions{alive: true}
	r := NewRegistry(&fakeDetector{}, &fakeResolver{}, &fakeApplier{}, sessions, nil,
		services.NewMetrics(), testEngineConfig(),
		WorkerConfig{PollTimeout: 5 * time.Millisecond, LivenessEvery: 1000})

	var launched int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, started := r.Start("sess-1", NewPushSource(8)); started {
				mu.Lock()
				launched++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if launched != 1 {
		t.Fatalf("expected exactly one launch across concurrent starts, got %d", launched)
	}
	r.StopAll()
}

func TestRegistryEnqueueWithoutWorker(t *testing.T) {
	r := NewRegistry(&fakeDetector{}, &fakeResolver{}, &fakeApplier{}, &fakeSessions{}, nil,
		services.NewMetrics(), testEngineConfig(), WorkerConfig{})

	_, err := r.EnqueueFrame("nope", &models.Frame{})
	if !errors.Is(err, ErrNoWorker) {
		t.Fatalf("expected ErrNoWorker, got %v", err)
	}
}

func TestRegistryClearsFinishedWorkers(t *testing.T) {
	sessions := &fakeSessions{alive: true}
	r := NewRegistry(&fakeDetector{}, &fakeResolver{}, &fakeApplier{}, sessions, nil,
		services.NewMetrics(), testEngineConfig(),
		WorkerConfig{PollTimeout: 5 * time.Millisecond, LivenessEvery: 1000})

	w, _ := r.Start("sess-1", NewPushSource(8))
	w.Stop()
	w.Await()

	deadline := time.Now().Add(time.Second)
	for r.Active("sess-1") && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if r.Active("sess-1") {
		t.Fatal("finished worker still registered")
	}
}

func TestPushSourceDropsWhenFull(t *testing.T) {
	s := NewPushSource(2)
	if !s.Enqueue(&models.Frame{}) || !s.Enqueue(&models.Frame{}) {
		t.Fatal("enqueue within capacity must succeed")
	}
	if s.Enqueue(&models.Frame{}) {
		t.Fatal("enqueue past capacity must report a drop")
	}

	if f, ok := s.Next(10 * time.Millisecond); f == nil || !ok {
		t.Fatal("expected a buffered frame")
	}
	if !s.Enqueue(&models.Frame{}) {
		t.Fatal("enqueue must succeed again after a frame drains")
	}
}

func TestPushSourceTimeoutAndClose(t *testing.T) {
	s := NewPushSource(2)
	if f, ok := s.Next(5 * time.Millisecond); f != nil || !ok {
		t.Fatalf("expected timeout (nil, true), got (%v, %v)", f, ok)
	}
	s.Close()
	if _, ok := s.Next(5 * time.Millisecond); ok {
		t.Fatal("expected closed source to report end of stream")
	}
	if s.Enqueue(&models.Frame{}) {
		t.Fatal("enqueue after close must report a drop")
	}
}

func TestPushSourceConcurrentEnqueueAndClose(t *testing.T) {
	s := NewPushSource(4)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				s.Enqueue(&models.Frame{})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			s.Next(0)
		}
		s.Close()
	}()
	wg.Wait()

	if s.Enqueue(&models.Frame{}) {
		t.Fatal("enqueue after close must report a drop")
	}
}
