package resolver

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

const indexInputSize = 224

// PrepareCrop resizes an encoded crop to the similarity index's input
// size and re-encodes it. On any failure the original bytes are returned
// so the query can still be attempted.
func PrepareCrop(data []byte) []byte {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	b := img.Bounds()
	if b.Dx() == indexInputSize && b.Dy() == indexInputSize {
		return data
	}

	dst := image.NewRGBA(image.Rect(0, 0, indexInputSize, indexInputSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return data
	}
	return buf.Bytes()
}

// EncodeCrop encodes a decoded sub-image back to JPEG.
func EncodeCrop(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode crop: %w", err)
	}
	return buf.Bytes(), nil
}
