package repository

import (
	"context"
	"time"

	"FxPulse/internal/domain/models"
)

// ResultPublisher ships finished analysis results downstream.
type ResultPublisher interface {
	Publish(ctx context.Context, r *models.AnalysisResult) error
	Close() error
}

type Metrics interface {
	RecordRun(outcome string)
	RecordStage(stage string, d time.Duration)
	RecordHotPair(symbol string, pips float64)
	RecordCorroboration(result string)
	RecordPublishFailure()
}
