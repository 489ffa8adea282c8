//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/routes"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/v1/services"
	"github.com/karimnaderr/speech-to-text-backend/internal/config"
)

// InitializeApp wires the full dependency graph from configuration.
func InitializeApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	wire.Build(
		ProvideTranscriber,
		ProvideClassifier,
		ProvideTranscriptDAO,
		services.NewTranscriptService,
		services.NewExportService,
		wire.Struct(new(routes.ServiceContainer), "*"),
		NewApp,
	)
	return &App{}, nil
}
