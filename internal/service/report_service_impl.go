package service

import (
	"context"
	"time"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/alexanderramin/aiact/internal/report"
)

type reportService struct {
	observer UseCaseObserver
}

func NewReportService(observers ...UseCaseObserver) ReportService {
	return &reportService{observer: useCaseObserverOrNoop(observers)}
}

func (s *reportService) Render(ctx context.Context, result domain.ClassificationResult) (data []byte, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "render-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"system":   result.SystemName,
				"category": string(result.RiskCategory),
				"bytes":    len(data),
			},
		})
	}()

	data, err = report.Render(result)
	return data, err
}

func (s *reportService) Export(ctx context.Context, path string, result domain.ClassificationResult) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "export-report",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields: map[string]any{
				"system": result.SystemName,
				"path":   path,
			},
		})
	}()

	return report.WriteFile(path, result)
}
