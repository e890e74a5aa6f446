package service

import (
	"context"

	"github.com/alexanderramin/aiact/internal/classifier"
	"github.com/alexanderramin/aiact/internal/domain"
)

// ClassificationService runs the classifier once per submitted input.
type ClassificationService interface {
	Classify(ctx context.Context, in domain.ClassificationInput) domain.ClassificationResult
	Explain(ctx context.Context, in domain.ClassificationInput) classifier.Assessment
}

// ReportService renders results to the plain-text assessment report.
type ReportService interface {
	Render(ctx context.Context, result domain.ClassificationResult) ([]byte, error)
	Export(ctx context.Context, path string, result domain.ClassificationResult) error
}
