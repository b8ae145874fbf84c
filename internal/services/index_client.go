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

// IndexClient queries the external visual similarity index with a product
// crop and gets back candidate matches ranked descending by score.
type IndexClient struct {
	conn   *grpc.ClientConn
	client pb.ProductIndexClient
	url    string
}

func NewIndexClient(url string) (*IndexClient, error) {
	log.Printf("Connecting to product index gRPC at %s", url)

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
		return nil, fmt.Errorf("could not connect to product index at %s: %s", url, err)
	}

	log.Printf("Connected to product index at %s", url)
	return &IndexClient{
		conn:   conn,
		client: pb.NewProductIndexClient(conn),
		url:    url,
	}, nil
}

// Query returns up to topK matches for the crop.
func (ic *IndexClient) Query(ctx context.Context, crop []byte, topK int) ([]models.ProductMatch, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	result, err := ic.client.Query(ctx, &pb.CropQuery{
		ImageData: crop,
		TopK:      int32(topK),
	})
	if err != nil {
		return nil, fmt.Errorf("could not query product index: %w", err)
	}

	matches := make([]models.ProductMatch, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, models.ProductMatch{
			Barcode: m.Barcode,
			Name:    m.Name,
			Brand:   m.Brand,
			Score:   float64(m.Score),
		})
	}
	return matches, nil
}

func (ic *IndexClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := ic.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (ic *IndexClient) Close() error {
	if ic.conn != nil {
		return ic.conn.Close()
	}
	return nil
}
