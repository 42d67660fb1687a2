package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	c, err := Parse([]byte("environment: test\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, 3, c.Corroboration.MaxAttempts)
	assert.Equal(t, time.Second, c.Corroboration.InitialBackoff)
	assert.Equal(t, "gemini-2.5-flash", c.Corroboration.Model)
	assert.Equal(t, "/metrics", c.Metrics.Path)
	assert.Equal(t, []string{"*"}, c.Server.CORSOrigins)
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing environment", "server:\n  port: 9000\n"},
		{"kafka without topic", "environment: dev\nkafka:\n  enabled: true\n  brokers: [\"localhost:9092\"]\n"},
		{"kafka without brokers", "environment: dev\nkafka:\n  enabled: true\n  topic: fx\n"},
		{"redis without addr", "environment: dev\ncache:\n  redis:\n    enabled: true\n"},
		{"negative attempts", "environment: dev\ncorroboration:\n  max_attempts: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	c, err := Parse([]byte("environment: dev\ncorroboration:\n  api_key: from-file\n"))
	require.NoError(t, err)

	env := map[string]string{
		"FX_SHEET_URL":  "https://example.test/sheet.csv",
		"API_KEY":       "fallback",
		"KAFKA_BROKERS": "a:9092,b:9092",
		"REDIS_ADDR":    "redis:6379",
	}
	c.ApplyEnv(func(k string) string { return env[k] })

	assert.Equal(t, "https://example.test/sheet.csv", c.Source.SheetURL)
	assert.Equal(t, "fallback", c.Corroboration.APIKey)
	assert.Equal(t, []string{"a:9092", "b:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "redis:6379", c.Cache.Redis.Addr)

	env["GEMINI_API_KEY"] = "primary"
	c.ApplyEnv(func(k string) string { return env[k] })
	assert.Equal(t, "primary", c.Corroboration.APIKey)
}
