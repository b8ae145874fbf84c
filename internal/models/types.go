package models

import "image"

// Frame carries one captured frame through the pipeline. Data holds the
// encoded JPEG bytes; Image is set when the producer already decoded it.
type Frame struct {
	Data           []byte      `json:"frame,omitempty"`
	Image          image.Image `json:"-"`
	Timestamp      int64       `json:"timestamp"`
	SequenceNumber int32       `json:"sequence_number,omitempty"`
}

type BoundingBox struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

func (b BoundingBox) CenterY() int {
	return (b.Y1 + b.Y2) / 2
}

func (b BoundingBox) Area() int {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

type Detection struct {
	Label      string      `json:"label"`
	Box        BoundingBox `json:"bbox"`
	Confidence float64     `json:"confidence"`
}

// CartEvent is a confirmed physical cart transition emitted by the
// debounce engine, before product resolution.
type CartEvent struct {
	SessionID  string  `json:"session_id"`
	Label      string  `json:"label"`
	Action     string  `json:"action"`
	Crop       []byte  `json:"-"`
	Confidence float64 `json:"confidence"`
	Timestamp  int64   `json:"timestamp"`
}

// ProductMatch is one result from the visual similarity index, ranked
// descending by Score.
type ProductMatch struct {
	Barcode string  `json:"barcode"`
	Name    string  `json:"name"`
	Brand   string  `json:"brand,omitempty"`
	Score   float64 `json:"score"`
}

// PriceInfo is a catalog lookup result.
type PriceInfo struct {
	Price       float64 `json:"price"`
	Currency    string  `json:"currency,omitempty"`
	ProductName string  `json:"product_name"`
}

// ResolvedProduct is the outcome of identification & price resolution
// for one cart event.
type ResolvedProduct struct {
	ProductName string  `json:"product_name"`
	Barcode     string  `json:"barcode,omitempty"`
	Price       float64 `json:"price"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
	Code      string `json:"code,omitempty"`
}
