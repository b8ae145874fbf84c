package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"SMART_CART/go-backend/internal/models"
	pb "SMART_CART/go-backend/pkg/pb"
)

// DetectorClient talks to the external object-detection service.
type DetectorClient struct {
	conn   *grpc.ClientConn
	client pb.ObjectDetectionClient
	url    string
}

func NewDetectorClient(url string) (*DetectorClient, error) {
	log.Printf("Connecting to detector gRPC at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to detector at %s: %s", url, err)
	}

	log.Printf("Connected to detector at %s", url)
	return &DetectorClient{
		conn:   conn,
		client: pb.NewObjectDetectionClient(conn),
		url:    url,
	}, nil
}

// Detect runs the external detector on one frame. The call is bounded by a
// short timeout so a slow detector cannot stall the tracking loop.
func (dc *DetectorClient) Detect(ctx context.Context, frame *models.Frame) ([]models.Detection, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req := &pb.VideoFrame{
		FrameData:      frame.Data,
		Timestamp:      frame.Timestamp,
		SequenceNumber: frame.SequenceNumber,
	}
	result, err := dc.client.Detect(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not detect objects: %w", err)
	}

	detections := make([]models.Detection, 0, len(result.Detections))
	for _, d := range result.Detections {
		box := d.GetBox()
		if box == nil {
			continue
		}
		detections = append(detections, models.Detection{
			Label: d.Label,
			Box: models.BoundingBox{
				X1: int(box.X1), Y1: int(box.Y1),
				X2: int(box.X2), Y2: int(box.Y2),
			},
			Confidence: float64(d.Confidence),
		})
	}
	return detections, nil
}

func (dc *DetectorClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := dc.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (dc *DetectorClient) Close() error {
	if dc.conn != nil {
		return dc.conn.Close()
	}
	return nil
}
