//go:build wireinject
// +build wireinject

package di

import (
	"FxPulse/pkg/config"
	"FxPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Domain
		ProvideUniverse,
		ProvideEngine,
		ProvideParser,

		// Infrastructure
		ProvideSnapshotSource,
		ProvideCache,
		ProvideCorroborator,
		ProvideResultPublisher,
		ProvideLimiter,

		// Use cases and transport
		ProvideAnalysisUseCase,
		ProvideAnalysisHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return nil, nil, nil
}
