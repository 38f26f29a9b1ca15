package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder renders QR symbols as PNG rasters with medium error
// correction, matching what handheld scanners on a production line
// handle comfortably.
type Encoder struct{}

// NewEncoder creates a QR encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders payload as a square PNG of sizePx pixels. Oversized
// payloads fail here and are degraded per row by the composer.
func (e *Encoder) Encode(payload string, sizePx int) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, sizePx)
	if err != nil {
		return nil, fmt.Errorf("qr encoding failed: %w", err)
	}
	return png, nil
}
