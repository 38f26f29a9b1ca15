package services

import (
	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/internal/core/ports"
)

// qrPixelSize is the raster resolution the QR symbol is encoded at
// before being placed into its fixed 1.8 cm cell.
const qrPixelSize = 256

// Font sizes (points) for the fixed label typography.
const (
	sizeHeader         = 8
	sizeAssembly       = 9
	sizeAssemblySuffix = 11
	sizePartNumber     = 11
	sizePartStatus     = 9
	sizeDescription    = 7
	sizeQuantity       = 9
	sizeBinType        = 8
	sizeType           = 7
	sizeDate           = 7
	sizeLocation       = 8
	sizePlaceholder    = 12
)

// Composer assembles the five-panel region tree for one record. The
// panel order, column splits and typography are fixed; only the
// location panel's widths come from the layout config. Inputs are
// never mutated.
type Composer struct {
	layout domain.LayoutConfig
	qr     ports.QREncoder
	logo   *domain.Raster // prepared once per run, nil for no branding
}

// NewComposer creates a composer. The layout config is validated once
// here; the composer itself never renormalizes widths.
func NewComposer(layout domain.LayoutConfig, qr ports.QREncoder, logo *domain.Raster) (*Composer, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Composer{layout: layout, qr: qr, logo: logo}, nil
}

// Compose builds the label descriptor for one record. A QR encoding
// failure degrades the QR cell to a text placeholder and is reported as
// a RowIssue; it never fails the label.
func (c *Composer) Compose(data domain.LabelData, date string, row int) (domain.LabelDescriptor, []domain.RowIssue) {
	var issues []domain.RowIssue

	qrCell := domain.TextCell("QR", true, sizePlaceholder, domain.AlignCenter)
	payload := BuildPayload(data, date)
	if png, err := c.qr.Encode(payload, qrPixelSize); err != nil {
		issues = append(issues, domain.RowIssue{Row: row, Region: "qr", Reason: err.Error()})
	} else {
		qrCell = domain.ImageCell(&domain.Raster{
			PNG:      png,
			WidthCm:  domain.QRSizeCm,
			HeightCm: domain.QRSizeCm,
		})
	}

	descriptor := domain.LabelDescriptor{
		Panels: []domain.Panel{
			c.identityPanel(data),
			c.partPanel(data),
			c.descriptionPanel(data),
			c.quantityPanel(data, date, qrCell),
			c.locationPanel(domain.SplitLocation(data.LineLocation)),
		},
	}
	return descriptor, issues
}

// identityPanel: branding slot, ASSLY header, assembly value with the
// last three characters emphasized.
func (c *Composer) identityPanel(data domain.LabelData) domain.Panel {
	logoCell := domain.Cell{Align: domain.AlignCenter}
	if c.logo != nil {
		logoCell = domain.ImageCell(c.logo)
	}

	main, suffix := domain.AssemblyParts(data.Assembly)
	valueCell := domain.Cell{
		Runs: []domain.TextRun{
			{Text: main, Size: sizeAssembly},
			{Text: suffix, Bold: true, Size: sizeAssemblySuffix},
		},
		Align: domain.AlignLeft,
	}

	return domain.Panel{
		Name:       "identity",
		ColWidths:  []float64{0.25, 0.15, 0.60},
		RowHeights: []float64{domain.IdentityRowHeightCm},
		Cells: [][]domain.Cell{{
			logoCell,
			domain.TextCell("ASSLY", true, sizeHeader, domain.AlignCenter),
			valueCell,
		}},
		PaddingHPt: 2,
		PaddingVPt: 2,
	}
}

// partPanel: header, bold part number, bold centered part status.
func (c *Composer) partPanel(data domain.LabelData) domain.Panel {
	return domain.Panel{
		Name:       "part",
		ColWidths:  []float64{0.25, 0.50, 0.25},
		RowHeights: []float64{domain.PartRowHeightCm},
		Cells: [][]domain.Cell{{
			domain.TextCell("PART NO", true, sizeHeader, domain.AlignCenter),
			domain.TextCell(data.PartNumber, true, sizePartNumber, domain.AlignLeft),
			domain.TextCell(data.PartStatus, true, sizePartStatus, domain.AlignCenter),
		}},
		PaddingHPt: 3,
		PaddingVPt: 2,
	}
}

// descriptionPanel: header and free-text description.
func (c *Composer) descriptionPanel(data domain.LabelData) domain.Panel {
	return domain.Panel{
		Name:       "description",
		ColWidths:  []float64{0.25, 0.75},
		RowHeights: []float64{domain.DescriptionRowHeightCm},
		Cells: [][]domain.Cell{{
			domain.TextCell("PART DESC", true, sizeHeader, domain.AlignCenter),
			domain.TextCell(data.Description, false, sizeDescription, domain.AlignLeft),
		}},
		PaddingHPt: 3,
		PaddingVPt: 2,
	}
}

// quantityPanel: the 3x4 grid carrying quantity, bin type, part type
// and date, with the QR cell spanning all three rows of the last
// column.
func (c *Composer) quantityPanel(data domain.LabelData, date string, qrCell domain.Cell) domain.Panel {
	empty := domain.Cell{}
	return domain.Panel{
		Name:      "quantity",
		ColWidths: []float64{0.25, 0.175, 0.175, 0.40},
		RowHeights: []float64{
			domain.QuantityRowHeightCm,
			domain.TypeRowHeightCm,
			domain.DateRowHeightCm,
		},
		Cells: [][]domain.Cell{
			{
				domain.TextCell("QTY/VEH", true, sizeHeader, domain.AlignCenter),
				domain.TextCell(data.Quantity, false, sizeQuantity, domain.AlignLeft),
				domain.TextCell(data.BinType, false, sizeBinType, domain.AlignCenter),
				qrCell,
			},
			{
				domain.TextCell("TYPE", true, sizeHeader, domain.AlignCenter),
				domain.TextCell(data.Type, false, sizeType, domain.AlignLeft),
				empty,
				empty,
			},
			{
				domain.TextCell("DATE", true, sizeHeader, domain.AlignCenter),
				domain.TextCell(date, false, sizeDate, domain.AlignLeft),
				empty,
				empty,
			},
		},
		Spans:      []domain.Span{{Row: 0, Col: 3, RowSpan: 3, ColSpan: 1}},
		PaddingHPt: 3,
		PaddingVPt: 2,
	}
}

// locationPanel: header plus four segment boxes; the only panel whose
// widths are caller-configurable.
func (c *Composer) locationPanel(segments domain.LocationSegments) domain.Panel {
	cells := []domain.Cell{
		domain.TextCell("LINE LOCATION", true, sizeHeader, domain.AlignCenter),
	}
	for _, seg := range segments {
		cells = append(cells, domain.TextCell(seg, false, sizeLocation, domain.AlignCenter))
	}
	return domain.Panel{
		Name:       "location",
		ColWidths:  c.layout.LocationWidths[:],
		RowHeights: []float64{domain.LocationRowHeightCm},
		Cells:      [][]domain.Cell{cells},
		PaddingHPt: 2,
		PaddingVPt: 2,
	}
}
