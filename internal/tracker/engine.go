package tracker

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"

	"SMART_CART/go-backend/internal/models"
	"SMART_CART/go-backend/internal/resolver"
)

// EngineConfig carries the debounce thresholds. RecentFrames must be at
// least FrameThreshold-1, otherwise a fresh label's own confirmation run
// lands in the history window it is checked against and blocks the add.
type EngineConfig struct {
	FrameThreshold     int
	DirectionThreshold int
	HistorySize        int
	RecentFrames       int
}

// Engine turns per-frame detection lists into debounced add/remove cart
// events. One engine instance belongs to exactly one session worker and
// is not safe for concurrent use.
type Engine struct {
	cfg       EngineConfig
	tracks    map[string]*Track
	confirmed map[string]bool
	history   *frameHistory
}

func NewEngine(cfg EngineConfig) *Engine {
	return &Engine{
		cfg:       cfg,
		tracks:    make(map[string]*Track),
		confirmed: make(map[string]bool),
		history:   newFrameHistory(cfg.HistorySize),
	}
}

type observation struct {
	box        models.BoundingBox
	confidence float64
}

// Process advances all tracks by one frame and returns any events that
// confirmed on it. If a label has several detections in the frame, the
// last enumerated box wins; this is a single-instance-per-label
// approximation, not a multi-object tracker.
func (e *Engine) Process(frame *models.Frame, detections []models.Detection) []*models.CartEvent {
	detected := make(map[string]observation, len(detections))
	for _, d := range detections {
		detected[d.Label] = observation{box: d.Box, confidence: d.Confidence}
	}

	// A label missing from this frame loses its track entirely, motion
	// score included.
	for label := range e.tracks {
		if _, ok := detected[label]; !ok {
			delete(e.tracks, label)
		}
	}

	var img image.Image
	for label, obs := range detected {
		t := e.tracks[label]
		if t == nil {
			t = &Track{}
			e.tracks[label] = t
		}
		t.observe(obs.box.CenterY())

		if area := obs.box.Area(); area > t.bestArea {
			if img == nil {
				img = decodeFrame(frame)
			}
			t.updateCrop(cropDetection(img, obs.box), area)
		}
	}

	var events []*models.CartEvent
	for label, obs := range detected {
		t := e.tracks[label]
		if t.FrameCount < e.cfg.FrameThreshold {
			continue
		}
		switch {
		case t.DirectionScore > e.cfg.DirectionThreshold && !e.confirmed[label] && e.isNewDetection(label):
			events = append(events, e.newEvent(label, t, obs, models.ActionAdd, frame))
			e.confirmed[label] = true
			t.FrameCount = 0
		case t.DirectionScore < -e.cfg.DirectionThreshold && e.confirmed[label]:
			events = append(events, e.newEvent(label, t, obs, models.ActionRemove, frame))
			delete(e.confirmed, label)
			t.FrameCount = 0
		}
	}

	e.history.append(labelSet(detected))
	return events
}

// isNewDetection rejects labels with sustained presence before the run
// that is trying to confirm them, which keeps a flickering track from
// firing add repeatedly.
func (e *Engine) isNewDetection(label string) bool {
	return !e.history.seenBefore(label, e.cfg.RecentFrames)
}

func (e *Engine) newEvent(label string, t *Track, obs observation, action string, frame *models.Frame) *models.CartEvent {
	return &models.CartEvent{
		Label:      label,
		Action:     action,
		Crop:       t.bestCrop,
		Confidence: obs.confidence,
		Timestamp:  frame.Timestamp,
	}
}

// Confirmed reports whether the engine currently believes the label is in
// the cart.
func (e *Engine) Confirmed(label string) bool {
	return e.confirmed[label]
}

func labelSet(detected map[string]observation) map[string]bool {
	set := make(map[string]bool, len(detected))
	for label := range detected {
		set[label] = true
	}
	return set
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func decodeFrame(f *models.Frame) image.Image {
	if f.Image != nil {
		return f.Image
	}
	if len(f.Data) == 0 {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		log.Printf("Failed to decode frame %d: %v", f.SequenceNumber, err)
		return nil
	}
	f.Image = img
	return img
}

func cropDetection(img image.Image, box models.BoundingBox) []byte {
	si, ok := img.(subImager)
	if !ok {
		return nil
	}
	r := image.Rect(box.X1, box.Y1, box.X2, box.Y2).Intersect(img.Bounds())
	if r.Empty() {
		return nil
	}
	data, err := resolver.EncodeCrop(si.SubImage(r))
	if err != nil {
		return nil
	}
	return data
}
