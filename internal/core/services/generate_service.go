package services

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
	"github.com/kamal-hamza/lbl-cli/internal/core/ports"
)

// GenerateService runs the whole pipeline: read the catalog, resolve
// the schema once, compose one label per row, paginate and render.
// Rows are processed strictly in input order; per-row QR or branding
// failures degrade that row and never abort the run.
type GenerateService struct {
	reader   ports.TableReader
	qr       ports.QREncoder
	logos    ports.LogoLoader
	renderer ports.Renderer
	resolver *SchemaResolver
}

// NewGenerateService wires the pipeline from its ports
func NewGenerateService(reader ports.TableReader, qr ports.QREncoder, logos ports.LogoLoader, renderer ports.Renderer, resolver *SchemaResolver) *GenerateService {
	return &GenerateService{
		reader:   reader,
		qr:       qr,
		logos:    logos,
		renderer: renderer,
		resolver: resolver,
	}
}

// GenerateRequest represents one generation run
type GenerateRequest struct {
	InputPath string
	LogoPath  string // optional branding image
	Layout    domain.LayoutConfig
	Date      string    // preformatted run date, same on every label
	Output    io.Writer // receives the finished PDF bytes
	OnRow     func(done, total int)
}

// GenerateResponse summarizes a completed run
type GenerateResponse struct {
	Rows     int
	Pages    int
	Empty    bool // zero input rows: nothing to do, not an error
	Issues   []domain.RowIssue
	Warnings []string // run-scoped degradations (e.g. unusable logo)
}

// Execute runs the pipeline. Fatal errors (unreadable input, missing
// required columns, renderer failure) return before any output bytes
// are written.
func (s *GenerateService) Execute(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	table, err := s.reader.Read(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", req.InputPath, err)
	}

	schema, err := s.resolver.ResolveStrict(table.Columns)
	if err != nil {
		return nil, err
	}

	resp := &GenerateResponse{Rows: table.RowCount()}
	if resp.Rows == 0 {
		resp.Empty = true
		return resp, nil
	}

	// Branding is prepared once per run; an unusable logo degrades the
	// whole run to logo-less labels instead of failing it.
	var logo *domain.Raster
	if req.LogoPath != "" {
		logo, err = s.logos.Fit(req.LogoPath, domain.ContentWidthCm*domain.LogoWidthFraction, domain.LogoHeightCm)
		if err != nil {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf("logo %s unusable, labels generated without branding: %v", req.LogoPath, err))
			logo = nil
		}
	}

	composer, err := NewComposer(req.Layout, s.qr, logo)
	if err != nil {
		return nil, err
	}

	extractor := NewExtractor(schema)
	labels := make([]domain.LabelDescriptor, 0, resp.Rows)
	for row := 0; row < resp.Rows; row++ {
		data := extractor.Extract(table, row)
		label, issues := composer.Compose(data, req.Date, row)
		labels = append(labels, label)
		resp.Issues = append(resp.Issues, issues...)
		if req.OnRow != nil {
			req.OnRow(row+1, resp.Rows)
		}
	}

	doc := Paginate(labels)

	// Render to memory first so a renderer failure leaves no partial
	// output behind.
	var buf bytes.Buffer
	if err := s.renderer.Render(ctx, doc, &buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	if _, err := buf.WriteTo(req.Output); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	resp.Pages = doc.PageCount()
	return resp, nil
}
