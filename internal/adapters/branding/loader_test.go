package branding

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: 30, G: 60, B: 120, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoader_FitWithinBox(t *testing.T) {
	path := writeTestPNG(t, 400, 100)

	raster, err := NewLoader().Fit(path, 2.25, 0.75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if raster.WidthCm > 2.25+0.01 || raster.HeightCm > 0.75+0.01 {
		t.Errorf("raster %vx%v cm exceeds the 2.25x0.75 box", raster.WidthCm, raster.HeightCm)
	}
	// 4:1 source in a 3:1 box binds on width
	ratio := raster.WidthCm / raster.HeightCm
	if ratio < 3.9 || ratio > 4.1 {
		t.Errorf("aspect ratio %v not preserved", ratio)
	}
	if len(raster.PNG) == 0 {
		t.Error("empty raster bytes")
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().Fit(filepath.Join(t.TempDir(), "absent.png"), 2, 1)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
