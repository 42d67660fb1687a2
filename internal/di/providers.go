package di

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"FxPulse/internal/domain/market"
	"FxPulse/internal/domain/repository"
	domsvc "FxPulse/internal/domain/service"
	"FxPulse/internal/handler/api"
	internalrepo "FxPulse/internal/repository"
	icache "FxPulse/internal/service/cache"
	"FxPulse/internal/service/ratelimit"
	"FxPulse/internal/service/sheet"
	"FxPulse/internal/services/analytics"
	"FxPulse/internal/services/signals"
	"FxPulse/internal/usecase"
	"FxPulse/pkg/config"
	xhttp "FxPulse/pkg/http"
	pkgkafka "FxPulse/pkg/kafka"
	applogger "FxPulse/pkg/logger"
	"FxPulse/pkg/metrics"
	"FxPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideRegistry creates the Prometheus registry served at /metrics.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

func ProvideUniverse() *market.Universe {
	return market.DefaultUniverse()
}

func ProvideEngine(u *market.Universe) *signals.Engine {
	return signals.NewEngine(u)
}

func ProvideParser(u *market.Universe) *sheet.Parser {
	return sheet.NewParser(u)
}

// ProvideSnapshotSource creates the live sheet client.
func ProvideSnapshotSource(cfg *config.Config) domsvc.SnapshotSource {
	return sheet.NewClient(cfg)
}

// ProvideCache creates the corroboration cache: redis when enabled, in-process otherwise.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (icache.BytesCache, func(), error) {
	rc := cfg.Cache.Redis
	if !rc.Enabled {
		return icache.NewTTLCache(), func() {}, nil
	}
	c := icache.NewRedisCache(icache.RedisConfig{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
		Prefix:   rc.Prefix,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("redis cache: %w", err)
	}
	l.Info("redis cache connected", applogger.String("addr", rc.Addr))
	return c, func() {
		if err := c.Close(); err != nil {
			l.Warn("redis close error", applogger.Error(err))
		}
	}, nil
}

// ProvideCorroborator returns nil when corroboration is disabled.
func ProvideCorroborator(cfg *config.Config, c icache.BytesCache, m repository.Metrics, l *applogger.Logger) domsvc.Corroborator {
	if !cfg.Corroboration.Enabled {
		return nil
	}
	if cfg.Corroboration.APIKey == "" {
		l.Warn("corroboration enabled without an api key, analysis requests will fail")
	}
	return analytics.NewGemini(cfg, c, m, l)
}

// ProvideResultPublisher publishes to kafka when enabled and drops results otherwise.
func ProvideResultPublisher(cfg *config.Config, reg *prometheus.Registry, l *applogger.Logger) (repository.ResultPublisher, func(), error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopPublisher{}, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithHashByKey(true),
		pkgkafka.WithRegisterer(reg),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}
	pub := internalrepo.NewKafkaResultPublisher(producer, cfg.Kafka.Topic)
	return pub, func() {
		if err := pub.Close(); err != nil {
			l.Warn("kafka producer close error", applogger.Error(err))
		}
	}, nil
}

func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSecond)
}

// ProvideAnalysisUseCase creates the analysis use case.
func ProvideAnalysisUseCase(
	cfg *config.Config,
	engine *signals.Engine,
	parser *sheet.Parser,
	source domsvc.SnapshotSource,
	reviewer domsvc.Corroborator,
	pub repository.ResultPublisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(engine, parser, source, reviewer, pub, m, l, cfg.Server.RunTimeout)
}

func ProvideAnalysisHandler(l *applogger.Logger, uc *usecase.AnalysisUseCase, limiter *ratelimit.Limiter) xhttp.Handler {
	return api.NewAnalysisHandler(l, uc, limiter)
}

// ProvideHTTPServer creates the echo server with request metrics.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, reg *prometheus.Registry) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(reg, cfg.Metrics.Path))
	}
	return xhttp.NewServer(l, h, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server) *server.App {
	return server.New(cfg, l, srv)
}
