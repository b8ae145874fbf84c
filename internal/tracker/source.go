package tracker

import (
	"fmt"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"SMART_CART/go-backend/internal/models"
)

// FrameSource is the single pull interface both frame origins are
// normalized to. Next returns (frame, true) when a frame is available,
// (nil, true) when the timeout elapsed with nothing to deliver, and
// (nil, false) when the source is exhausted or closed.
type FrameSource interface {
	Next(timeout time.Duration) (*models.Frame, bool)
	Close() error
}

// PushSource buffers frames delivered by a remote device over the
// ingestion endpoint. The buffer is bounded; when the worker falls
// behind, Enqueue drops the newest frame rather than blocking the
// network reader.
type PushSource struct {
	frames chan *models.Frame

	mu     sync.RWMutex
	closed bool
}

func NewPushSource(capacity int) *PushSource {
	if capacity <= 0 {
		capacity = 64
	}
	return &PushSource{frames: make(chan *models.Frame, capacity)}
}

// Enqueue offers a frame to the worker. Returns false if the frame was
// dropped because the buffer is full or the source is already closed.
// The read lock keeps Close from tearing down the channel mid-send.
func (s *PushSource) Enqueue(frame *models.Frame) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.frames <- frame:
		return true
	default:
		return false
	}
}

func (s *PushSource) Next(timeout time.Duration) (*models.Frame, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case f, ok := <-s.frames:
		if !ok {
			return nil, false
		}
		return f, true
	case <-timer.C:
		return nil, true
	}
}

func (s *PushSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.frames)
	}
	return nil
}

// CameraSource reads frames from a locally attached camera and encodes
// them to JPEG so the rest of the pipeline sees the same frame shape as
// pushed frames.
type CameraSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
	seq     int32
}

func NewCameraSource(deviceID int) (*CameraSource, error) {
	capture, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to open camera device %d: %w", deviceID, err)
	}
	return &CameraSource{capture: capture, mat: gocv.NewMat()}, nil
}

func (s *CameraSource) Next(timeout time.Duration) (*models.Frame, bool) {
	if ok := s.capture.Read(&s.mat); !ok {
		return nil, false
	}
	if s.mat.Empty() {
		return nil, true
	}
	buf, err := gocv.IMEncode(".jpg", s.mat)
	if err != nil {
		return nil, true
	}
	defer buf.Close()
	data := make([]byte, len(buf.GetBytes()))
	copy(data, buf.GetBytes())

	s.seq++
	return &models.Frame{
		Data:           data,
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: s.seq,
	}, true
}

func (s *CameraSource) Close() error {
	s.mat.Close()
	return s.capture.Close()
}
