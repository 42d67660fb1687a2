package kafka

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_RequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	assert.Error(t, err)
}

func TestNewProducer_Options(t *testing.T) {
	p, err := NewProducer(
		WithBrokers([]string{"localhost:9092"}),
		WithCompression("zstd"),
		WithRequiredAcks(1),
		WithMaxAttempts(5),
		WithWriteTimeout(2*time.Second),
		WithHashByKey(true),
		WithRegisterer(prometheus.NewRegistry()),
	)
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, kafka.RequiredAcks(1), p.writer.RequiredAcks)
	assert.Equal(t, 5, p.writer.MaxAttempts)
	assert.Equal(t, 2*time.Second, p.writer.WriteTimeout)
	assert.IsType(t, &kafka.Hash{}, p.writer.Balancer)
	assert.Equal(t, kafka.Zstd, p.writer.Compression)
	assert.NotNil(t, p.metrics)
}

func TestParseCompression(t *testing.T) {
	assert.Equal(t, kafka.Snappy, parseCompression("snappy"))
	assert.Equal(t, kafka.Lz4, parseCompression("lz4"))
	assert.Equal(t, kafka.Gzip, parseCompression(""))
	assert.Equal(t, kafka.Gzip, parseCompression("bogus"))
}
