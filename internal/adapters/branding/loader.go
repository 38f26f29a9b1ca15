package branding

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// rasterDPI is the resolution logos are resampled at before placement.
const rasterDPI = 300

// Loader prepares branding images for the identity panel: decode, fit
// into the target box preserving aspect ratio, flatten transparency
// onto white, re-encode as PNG.
type Loader struct{}

// NewLoader creates a branding loader
func NewLoader() *Loader {
	return &Loader{}
}

// Fit loads the image at path and scales it to fit within
// maxWidthCm x maxHeightCm. The returned raster carries its final
// placement size, which may be smaller than the box on one axis.
func (l *Loader) Fit(path string, maxWidthCm, maxHeightCm float64) (*domain.Raster, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}

	boxW := int(maxWidthCm / 2.54 * rasterDPI)
	boxH := int(maxHeightCm / 2.54 * rasterDPI)
	fitted := imaging.Fit(img, boxW, boxH, imaging.Lanczos)

	// Sticker stock is white; flatten any alpha channel onto it so the
	// logo prints the way it previews.
	bounds := fitted.Bounds()
	flat := imaging.New(bounds.Dx(), bounds.Dy(), color.White)
	flat = imaging.Overlay(flat, fitted, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}

	return &domain.Raster{
		PNG:      buf.Bytes(),
		WidthCm:  float64(bounds.Dx()) * 2.54 / rasterDPI,
		HeightCm: float64(bounds.Dy()) * 2.54 / rasterDPI,
	}, nil
}
