package ports

import (
	"context"
	"io"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// TableReader defines the port for loading tabular part catalogs
type TableReader interface {
	// Read parses the file at path into a rectangular table.
	// The first row of the file is the header row.
	Read(ctx context.Context, path string) (*domain.Table, error)
}

// QREncoder defines the port for QR symbol generation
type QREncoder interface {
	// Encode renders payload as a square PNG raster of sizePx pixels.
	// Failures (e.g. payload too long) are recoverable per row.
	Encode(payload string, sizePx int) ([]byte, error)
}

// LogoLoader defines the port for branding asset preparation
type LogoLoader interface {
	// Fit loads the image at path and scales it to fit within the box,
	// preserving aspect ratio. Returns the raster with its final
	// placement size.
	Fit(path string, maxWidthCm, maxHeightCm float64) (*domain.Raster, error)
}

// Renderer defines the port for final document emission
type Renderer interface {
	// Render draws the label document to w as PDF bytes, one page per
	// label, with the fixed sticker geometry.
	Render(ctx context.Context, doc *domain.LabelDocument, w io.Writer) error
}
