package service

import (
	"context"
	"time"

	"github.com/alexanderramin/aiact/internal/classifier"
	"github.com/alexanderramin/aiact/internal/domain"
)

type classificationService struct {
	observer UseCaseObserver
	now      func() time.Time
}

func NewClassificationService(observers ...UseCaseObserver) ClassificationService {
	return &classificationService{
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *classificationService) Classify(ctx context.Context, in domain.ClassificationInput) domain.ClassificationResult {
	startedAt := s.now().UTC()
	result := classifier.Classify(in)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "classify",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields: map[string]any{
			"system":          in.SystemName,
			"category":        string(result.RiskCategory),
			"prohibited":      result.IsProhibited,
			"recommendations": len(result.Recommendations),
		},
	})
	return result
}

func (s *classificationService) Explain(ctx context.Context, in domain.ClassificationInput) classifier.Assessment {
	startedAt := s.now().UTC()
	assessment := classifier.Evaluate(in)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "explain",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields: map[string]any{
			"system":   in.SystemName,
			"category": string(assessment.Category),
			"triggers": len(assessment.Triggers),
		},
	})
	return assessment
}
