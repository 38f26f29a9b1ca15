package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// ptToCm converts point measurements to the document unit.
const ptToCm = 2.54 / 72.0

// gridLineWidthPt is the stroke width of panel cell borders; the outer
// page border is heavier (domain.BorderLineWidthPt).
const gridLineWidthPt = 1.0

const fontFamily = "Helvetica"

// Renderer draws label documents onto 10x15 cm sticker pages with
// gofpdf: one page per label, a single border rectangle per page, then
// the five panel grids stacked from the top margin.
type Renderer struct{}

// NewRenderer creates a PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the document to w. Nothing is written on failure.
func (r *Renderer) Render(ctx context.Context, doc *domain.LabelDocument, w io.Writer) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "cm",
		Size: gofpdf.SizeType{
			Wd: domain.StickerWidthCm,
			Ht: domain.StickerHeightCm,
		},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)

	x0 := (domain.StickerWidthCm - domain.ContentWidthCm) / 2
	for page := range doc.Labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		pdf.AddPage()
		r.drawBorder(pdf)

		y := domain.ContentTopMarginCm
		for pi := range doc.Labels[page].Panels {
			y = r.drawPanel(pdf, &doc.Labels[page].Panels[pi], page, pi, x0, y)
		}
	}

	return pdf.Output(w)
}

// drawBorder strokes the fixed content box rectangle once per page.
func (r *Renderer) drawBorder(pdf *gofpdf.Fpdf) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(domain.BorderLineWidthPt * ptToCm)
	pdf.Rect(
		(domain.StickerWidthCm-domain.ContentWidthCm)/2,
		domain.ContentTopMarginCm,
		domain.ContentWidthCm,
		domain.ContentHeightCm,
		"D",
	)
}

// drawPanel draws one panel grid starting at (x0, y0) and returns the y
// coordinate just below it.
func (r *Renderer) drawPanel(pdf *gofpdf.Fpdf, p *domain.Panel, page, panelIdx int, x0, y0 float64) float64 {
	pdf.SetLineWidth(gridLineWidthPt * ptToCm)
	pdf.SetCellMargin(p.PaddingHPt * ptToCm)

	y := y0
	for ri, row := range p.Cells {
		rh := p.RowHeights[ri]
		x := x0
		for ci := range row {
			cw := p.ColWidths[ci] * domain.ContentWidthCm
			if p.Covered(ri, ci) {
				x += cw
				continue
			}
			w, h := cw, rh
			if span, ok := p.SpanAt(ri, ci); ok {
				w, h = 0, 0
				for c := ci; c < ci+span.ColSpan; c++ {
					w += p.ColWidths[c] * domain.ContentWidthCm
				}
				for rr := ri; rr < ri+span.RowSpan; rr++ {
					h += p.RowHeights[rr]
				}
			}
			r.drawCell(pdf, p, &row[ci], page, panelIdx, ri, ci, x, y, w, h)
			x += cw
		}
		y += rh
	}
	return y
}

func (r *Renderer) drawCell(pdf *gofpdf.Fpdf, p *domain.Panel, cell *domain.Cell, page, panelIdx, ri, ci int, x, y, w, h float64) {
	pdf.Rect(x, y, w, h, "D")

	if cell.Image != nil {
		// Images respect the full cell padding box.
		padH := p.PaddingHPt * ptToCm
		padV := p.PaddingVPt * ptToCm
		r.placeImage(pdf, cell.Image, page, panelIdx, ri, ci,
			x+padH, y+padV, w-2*padH, h-2*padV)
		return
	}

	switch len(cell.Runs) {
	case 0:
		// empty cell, border only
	case 1:
		run := cell.Runs[0]
		if run.Text == "" {
			return
		}
		pdf.SetFont(fontFamily, fontStyle(run.Bold), run.Size)
		pdf.SetXY(x, y)
		pdf.CellFormat(w, h, run.Text, "", 0, alignCode(cell.Align)+"M", false, 0, "")
	default:
		r.drawRuns(pdf, cell, x, y, w, h)
	}
}

// drawRuns lays styled fragments side by side on a shared middle
// baseline. Used for the assembly value's plain/bold split.
func (r *Renderer) drawRuns(pdf *gofpdf.Fpdf, cell *domain.Cell, x, y, w, h float64) {
	total := 0.0
	maxSize := 0.0
	for _, run := range cell.Runs {
		pdf.SetFont(fontFamily, fontStyle(run.Bold), run.Size)
		total += pdf.GetStringWidth(run.Text)
		if run.Size > maxSize {
			maxSize = run.Size
		}
	}

	margin := pdf.GetCellMargin()
	cx := x + margin
	switch cell.Align {
	case domain.AlignCenter:
		cx = x + (w-total)/2
	case domain.AlignRight:
		cx = x + w - total - margin
	}

	// Approximate vertical centering on cap height.
	baseline := y + h/2 + maxSize*ptToCm*0.35
	for _, run := range cell.Runs {
		if run.Text == "" {
			continue
		}
		pdf.SetFont(fontFamily, fontStyle(run.Bold), run.Size)
		pdf.Text(cx, baseline, run.Text)
		cx += pdf.GetStringWidth(run.Text)
	}
}

func (r *Renderer) placeImage(pdf *gofpdf.Fpdf, img *domain.Raster, page, panelIdx, ri, ci int, x, y, w, h float64) {
	// Registration names must be unique per distinct raster.
	name := fmt.Sprintf("img-%d-%d-%d-%d", page, panelIdx, ri, ci)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.PNG))

	iw, ih := img.WidthCm, img.HeightCm
	if iw > w {
		ih *= w / iw
		iw = w
	}
	if ih > h {
		iw *= h / ih
		ih = h
	}
	pdf.ImageOptions(name, x+(w-iw)/2, y+(h-ih)/2, iw, ih, false, opts, 0, "")
}

func fontStyle(bold bool) string {
	if bold {
		return "B"
	}
	return ""
}

func alignCode(a domain.Alignment) string {
	switch a {
	case domain.AlignCenter:
		return "C"
	case domain.AlignRight:
		return "R"
	}
	return "L"
}
