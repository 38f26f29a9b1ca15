package domain

import (
	"fmt"
	"math"
)

// Physical sticker geometry, in centimeters. The content box sits flush
// to the top of the page behind a single border rectangle.
const (
	StickerWidthCm     = 10.0
	StickerHeightCm    = 15.0
	ContentWidthCm     = 9.8
	ContentHeightCm    = 5.0
	ContentTopMarginCm = 0.2
)

// BorderLineWidthPt is the stroke width of the per-page border rectangle.
const BorderLineWidthPt = 1.5

// QR and branding placement.
const (
	QRSizeCm          = 1.8
	LogoWidthFraction = 0.23 // of content width
	LogoHeightCm      = 0.75
)

// Panel row heights, in centimeters.
const (
	IdentityRowHeightCm    = 0.85
	PartRowHeightCm        = 0.8
	DescriptionRowHeightCm = 0.5
	QuantityRowHeightCm    = 0.6
	TypeRowHeightCm        = 0.6
	DateRowHeightCm        = 0.6
	LocationRowHeightCm    = 0.5
)

// WidthSumTolerance bounds how far the five location fractions may
// drift from 1.0 before the configuration is rejected.
const WidthSumTolerance = 0.001

// LayoutConfig carries the caller-adjustable geometry: the width
// fractions of the location panel's header box and four segment boxes.
// The remaining panel geometry is fixed.
type LayoutConfig struct {
	LocationWidths [5]float64
}

// DefaultLayoutConfig returns the stock location panel split.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{LocationWidths: [5]float64{0.25, 0.20, 0.20, 0.15, 0.20}}
}

// Validate checks that every fraction is positive and the five sum to
// 1.0 within tolerance. The composer never renormalizes; a bad split is
// a configuration error.
func (c LayoutConfig) Validate() error {
	sum := 0.0
	for i, w := range c.LocationWidths {
		if w <= 0 {
			return fmt.Errorf("location width %d must be positive, got %v", i+1, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > WidthSumTolerance {
		return fmt.Errorf("location widths must sum to 1.0, got %v", sum)
	}
	return nil
}

// Alignment positions cell content horizontally.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// TextRun is one styled fragment of a cell's text. Most cells carry a
// single run; the assembly value carries two (plain main, bold suffix).
type TextRun struct {
	Text string
	Bold bool
	Size float64 // points
}

// Raster is an encoded PNG image plus its placement size on the label.
type Raster struct {
	PNG      []byte
	WidthCm  float64
	HeightCm float64
}

// Cell is one box within a panel grid. Exactly one of Runs or Image is
// set; a cell with neither renders empty.
type Cell struct {
	Runs  []TextRun
	Image *Raster
	Align Alignment
}

// TextCell builds a single-run text cell.
func TextCell(text string, bold bool, size float64, align Alignment) Cell {
	return Cell{Runs: []TextRun{{Text: text, Bold: bold, Size: size}}, Align: align}
}

// ImageCell builds a centered raster cell.
func ImageCell(img *Raster) Cell {
	return Cell{Image: img, Align: AlignCenter}
}

// Span merges a rectangle of cells, anchored at (Row, Col), covering
// RowSpan x ColSpan grid positions.
type Span struct {
	Row, Col         int
	RowSpan, ColSpan int
}

// Covers reports whether the span includes grid position (row, col).
func (s Span) Covers(row, col int) bool {
	return row >= s.Row && row < s.Row+s.RowSpan &&
		col >= s.Col && col < s.Col+s.ColSpan
}

// Panel is one bordered sub-table of a label. Every panel draws a full
// cell grid with fixed padding; this is a presentation contract.
type Panel struct {
	Name       string
	ColWidths  []float64 // fractions of content width, sum 1.0
	RowHeights []float64 // centimeters
	Cells      [][]Cell  // row-major, one per grid position
	Spans      []Span
	PaddingHPt float64 // left/right cell padding, points
	PaddingVPt float64 // top/bottom cell padding, points
}

// SpanAt returns the span anchored at (row, col), if any.
func (p *Panel) SpanAt(row, col int) (Span, bool) {
	for _, s := range p.Spans {
		if s.Row == row && s.Col == col {
			return s, true
		}
	}
	return Span{}, false
}

// Covered reports whether (row, col) lies inside a span without being
// its anchor, i.e. the position is swallowed by a merge.
func (p *Panel) Covered(row, col int) bool {
	for _, s := range p.Spans {
		if s.Covers(row, col) && !(s.Row == row && s.Col == col) {
			return true
		}
	}
	return false
}

// HeightCm returns the panel's total height.
func (p *Panel) HeightCm() float64 {
	total := 0.0
	for _, h := range p.RowHeights {
		total += h
	}
	return total
}

// LabelDescriptor is the renderer-ready region tree for one record:
// the five panels in fixed order.
type LabelDescriptor struct {
	Panels []Panel
}

// LabelDocument is the paginated sequence of labels, one physical page
// per input row, in input row order.
type LabelDocument struct {
	Labels []LabelDescriptor
}

// PageCount returns the number of physical pages.
func (d *LabelDocument) PageCount() int {
	return len(d.Labels)
}

// BreakCount returns the number of page breaks: one between every pair
// of consecutive labels, zero for empty or single-label documents.
func (d *LabelDocument) BreakCount() int {
	if len(d.Labels) == 0 {
		return 0
	}
	return len(d.Labels) - 1
}
