package services

import "github.com/kamal-hamza/lbl-cli/internal/core/domain"

// Paginate sequences composed labels into a document stream: one
// physical page per record, input order preserved, a page break between
// every pair of consecutive labels and none after the last. Zero labels
// yields an empty document.
func Paginate(labels []domain.LabelDescriptor) *domain.LabelDocument {
	return &domain.LabelDocument{Labels: labels}
}
