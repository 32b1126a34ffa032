//go:build wireinject

package di

import (
	"github.com/google/wire"

	"homework-bot/internal/adapter/logging"
	"homework-bot/internal/app"
	"homework-bot/internal/config"
	"homework-bot/internal/domain/ports"
	"homework-bot/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		config.Load,
		provideZerolog,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.ZeroLogger)),
		provideCredentials,
		provideStatusProvider,
		provideBot,
		provideNotifier,
		provideWatchConfig,
		usecase.NewStatusWatch,
		wire.Bind(new(app.Poller), new(*usecase.StatusWatch)),
		provideInterval,
		provideAppOptions,
		app.New,
	)
	return nil, nil, nil
}
