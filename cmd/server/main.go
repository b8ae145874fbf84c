package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"SMART_CART/go-backend/internal/cart"
	"SMART_CART/go-backend/internal/config"
	"SMART_CART/go-backend/internal/database"
	"SMART_CART/go-backend/internal/handlers"
	"SMART_CART/go-backend/internal/resolver"
	"SMART_CART/go-backend/internal/services"
	"SMART_CART/go-backend/internal/store"
	"SMART_CART/go-backend/internal/tracker"
)

func main() {
	httpPort := flag.String("http-port", "", "HTTP port (overrides HTTP_PORT)")
	detectorURL := flag.String("detector-url", "", "Object detection service URL (overrides DETECTOR_URL)")
	indexURL := flag.String("index-url", "", "Similarity index service URL (overrides INDEX_URL)")
	cameraDevice := flag.Int("camera-device", -1, "Local camera device ID; -1 disables local capture")
	flag.Parse()

	cfg := config.LoadConfig()
	if *httpPort != "" {
		cfg.HTTPPort = *httpPort
	}
	if *detectorURL != "" {
		cfg.DetectorURL = *detectorURL
	}
	if *indexURL != "" {
		cfg.IndexURL = *indexURL
	}

	log.Println("Starting...")
	log.Printf("HTTP port: %s", cfg.HTTPPort)
	log.Printf("Detector service: %s", cfg.DetectorURL)
	log.Printf("Index service: %s", cfg.IndexURL)
	log.Printf("Database: %s", cfg.DSNForLog())

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DSN())
	cancel()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	detector, err := services.NewDetectorClient(cfg.DetectorURL)
	if err != nil {
		log.Fatalf("Failed to connect to detector service: %v", err)
	}
	defer detector.Close()

	index, err := services.NewIndexClient(cfg.IndexURL)
	if err != nil {
		log.Printf("Index service unavailable: %v", err)
		log.Println("Continuing without similarity index (label fallback only)")
	}
	if index != nil {
		defer index.Close()
	}

	metrics := services.GetMetrics()
	carts := store.NewCartStore(pool)
	catalog := store.NewCatalog(pool)
	crops := store.NewCropStore(cfg.CropDir, "/crops")

	var querier resolver.IndexQuerier
	if index != nil {
		querier = index
	}
	productResolver := resolver.New(querier, catalog)
	mutator := cart.NewMutator(carts)

	approved := make(map[string]bool, len(cfg.ApprovedLabels))
	for _, label := range cfg.ApprovedLabels {
		approved[strings.TrimSpace(label)] = true
	}

	registry := tracker.NewRegistry(detector, productResolver, mutator, carts, crops, metrics,
		tracker.EngineConfig{
			FrameThreshold:     cfg.FrameThreshold,
			DirectionThreshold: cfg.DirectionThreshold,
			HistorySize:        cfg.HistorySize,
			RecentFrames:       cfg.RecentFrames,
		},
		tracker.WorkerConfig{
			PollTimeout:   time.Duration(cfg.PollTimeoutMS) * time.Millisecond,
			LivenessEvery: cfg.LivenessEvery,
			MinConfidence: cfg.ConfidenceThreshold,
			Approved:      approved,
		})

	if *cameraDevice >= 0 {
		startCameraSession(registry, carts, *cameraDevice)
	}

	handler := handlers.New(carts, registry, detector, index, metrics, cfg.FrameQueueSize)

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.Handle("/metrics", metrics.Handler())

	httpServer := &http.Server{
		Addr:         ":" + strings.TrimPrefix(cfg.HTTPPort, ":"),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on port %s", cfg.HTTPPort)
		log.Printf("WebSocket:  ws://localhost:%s/ws", strings.TrimPrefix(cfg.HTTPPort, ":"))
		log.Printf("REST API:   http://localhost:%s/api/*", strings.TrimPrefix(cfg.HTTPPort, ":"))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	} else {
		log.Println("HTTP server gracefully stopped")
	}

	log.Println("Stopping tracking workers...")
	registry.StopAll()

	log.Println("Goodbye!")
}

// startCameraSession wires a locally attached camera to its own cart
// session, for running the backend next to a physical cart rig without a
// remote frame producer.
func startCameraSession(registry *tracker.Registry, carts *store.CartStore, device int) {
	source, err := tracker.NewCameraSource(device)
	if err != nil {
		log.Fatalf("Failed to open camera %d: %v", device, err)
	}

	sessionID := "camera-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := carts.Create(ctx, sessionID); err != nil {
		log.Fatalf("Failed to create camera cart: %v", err)
	}

	registry.Start(sessionID, source)
	log.Printf("Camera session started: %s (device %d)", sessionID, device)
}
