package mocks

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/kamal-hamza/lbl-cli/internal/core/domain"
)

// MockTableReader is a mock implementation of the TableReader port for testing
type MockTableReader struct {
	mu    sync.Mutex
	Table *domain.Table
	Err   error
	calls []string
}

// NewMockTableReader creates a mock reader that returns the given table
func NewMockTableReader(table *domain.Table) *MockTableReader {
	return &MockTableReader{Table: table}
}

// Read returns the configured table or error
func (m *MockTableReader) Read(ctx context.Context, path string) (*domain.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, path)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Table, nil
}

// GetCalls returns the paths Read was called with
func (m *MockTableReader) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockQREncoder is a mock implementation of the QREncoder port for testing
type MockQREncoder struct {
	mu       sync.Mutex
	Err      error
	payloads []string
}

// NewMockQREncoder creates a mock encoder that returns a tiny fake PNG
func NewMockQREncoder() *MockQREncoder {
	return &MockQREncoder{}
}

// Encode records the payload and returns fake PNG bytes
func (m *MockQREncoder) Encode(payload string, sizePx int) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payloads = append(m.payloads, payload)
	if m.Err != nil {
		return nil, m.Err
	}
	return []byte("PNG" + payload), nil
}

// GetPayloads returns every payload Encode received, in call order
func (m *MockQREncoder) GetPayloads() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.payloads...)
}

// MockLogoLoader is a mock implementation of the LogoLoader port for testing
type MockLogoLoader struct {
	mu     sync.Mutex
	Raster *domain.Raster
	Err    error
	calls  []string
}

// NewMockLogoLoader creates a mock loader returning the given raster
func NewMockLogoLoader(raster *domain.Raster) *MockLogoLoader {
	return &MockLogoLoader{Raster: raster}
}

// Fit returns the configured raster or error
func (m *MockLogoLoader) Fit(path string, maxWidthCm, maxHeightCm float64) (*domain.Raster, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, path)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Raster, nil
}

// GetCalls returns the paths Fit was called with
func (m *MockLogoLoader) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockRenderer is a mock implementation of the Renderer port for testing
type MockRenderer struct {
	mu   sync.Mutex
	Err  error
	docs []*domain.LabelDocument
}

// NewMockRenderer creates a mock renderer
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

// Render records the document and writes a marker per page
func (m *MockRenderer) Render(ctx context.Context, doc *domain.LabelDocument, w io.Writer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.docs = append(m.docs, doc)
	if m.Err != nil {
		return m.Err
	}
	for i := range doc.Labels {
		fmt.Fprintf(w, "[page %d]", i+1)
	}
	return nil
}

// GetDocuments returns every document Render received
func (m *MockRenderer) GetDocuments() []*domain.LabelDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.LabelDocument(nil), m.docs...)
}
