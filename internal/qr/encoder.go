// Package qr renders serialized payloads as QR symbols.
package qr

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/skip2/go-qrcode"

	"truckqr/internal/domain"
)

const (
	// ModulePixels is the edge length of one module in the rendered image.
	ModulePixels = 8
	// QuietZone is the border width in modules; go-qrcode draws 4.
	QuietZone = 4
	// Level tolerates roughly 15% damage.
	Level = qrcode.Medium
)

// Artifact is an encoded symbol together with the exact text inside it.
type Artifact struct {
	PNG     []byte
	Payload string
	Version int
	// Size is the image edge length in pixels.
	Size int
}

// Encode picks the smallest version holding payload at Level and renders it as PNG.
func Encode(payload string) (Artifact, error) {
	q, err := newSymbol(payload)
	if err != nil {
		return Artifact{}, err
	}
	img := q.Image(-ModulePixels)

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return Artifact{}, domain.InternalError{Msg: "encode qr png", Err: err}
	}
	return Artifact{
		PNG:     buf.Bytes(),
		Payload: payload,
		Version: q.VersionNumber,
		Size:    img.Bounds().Dx(),
	}, nil
}

// Image renders payload as an 8-bit grayscale image, which PDF writers embed
// without palette handling.
func Image(payload string) (*image.Gray, error) {
	q, err := newSymbol(payload)
	if err != nil {
		return nil, err
	}
	src := q.Image(-ModulePixels)
	b := src.Bounds()
	dst := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.At(x, y))
		}
	}
	return dst, nil
}

func newSymbol(payload string) (*qrcode.QRCode, error) {
	q, err := qrcode.New(payload, Level)
	if err != nil {
		if strings.Contains(err.Error(), "too long") {
			return nil, domain.PayloadTooLargeError{Size: len(payload), Err: err}
		}
		return nil, domain.InternalError{Msg: "build qr symbol", Err: err}
	}
	q.DisableBorder = false
	return q, nil
}
