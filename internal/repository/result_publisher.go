package repository

import (
	"context"
	"fmt"

	"FxPulse/internal/domain/models"
	"FxPulse/internal/domain/repository"
)

// producer is the subset of pkg/kafka.Producer used here.
type producer interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaResultPublisher implements ResultPublisher for Kafka.
// Messages are keyed by the hot pair so one pair's runs stay ordered.
type KafkaResultPublisher struct {
	producer producer
	topic    string
}

func NewKafkaResultPublisher(p producer, topic string) repository.ResultPublisher {
	return &KafkaResultPublisher{producer: p, topic: topic}
}

func (p *KafkaResultPublisher) Publish(ctx context.Context, r *models.AnalysisResult) error {
	if r == nil {
		return nil
	}
	if err := p.producer.Publish(ctx, p.topic, []byte(r.HotPair.Pair), r); err != nil {
		return fmt.Errorf("publish run %s: %w", r.RunID, err)
	}
	return nil
}

func (p *KafkaResultPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops results. Used when kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *models.AnalysisResult) error { return nil }

func (NoopPublisher) Close() error { return nil }
