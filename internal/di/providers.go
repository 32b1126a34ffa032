package di

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"homework-bot/internal/adapter/logging"
	"homework-bot/internal/adapter/practicum"
	"homework-bot/internal/adapter/telegram"
	"homework-bot/internal/app"
	"homework-bot/internal/config"
	"homework-bot/internal/domain/model"
	"homework-bot/internal/domain/ports"
	"homework-bot/internal/usecase"
)

func provideZerolog(cfg *config.Config) (zerolog.Logger, func(), error) {
	return logging.NewZerolog(cfg.LogFile, cfg.LogLevel)
}

// provideCredentials is the startup gate: without every secret the graph
// fails with model.ErrConfig and the loop never starts.
func provideCredentials(cfg *config.Config, logger ports.Logger) (config.Credentials, error) {
	ctx := context.Background()
	logger.Debug(ctx, "checking tokens")
	if !cfg.Credentials.AllPresent() {
		missing := cfg.Credentials.Missing()
		logger.Fatal(ctx, "required tokens are missing, bot stopped", "missing", missing)
		return config.Credentials{}, &model.Error{Kind: model.KindConfig, Op: "check tokens", Fields: missing}
	}
	return cfg.Credentials, nil
}

func provideStatusProvider(cfg *config.Config, creds config.Credentials, logger ports.Logger) ports.StatusProvider {
	return practicum.New(cfg.PracticumEndpoint, creds.PracticumToken, cfg.RequestTimeout, logger)
}

func provideBot(cfg *config.Config, creds config.Credentials) *tgbotapi.BotAPI {
	return telegram.NewBot(creds.TelegramToken, cfg.RequestTimeout)
}

func provideNotifier(bot *tgbotapi.BotAPI, creds config.Credentials, logger ports.Logger) ports.Notifier {
	return telegram.NewNotifier(bot, creds.TelegramChatID, logger)
}

func provideWatchConfig(cfg *config.Config) usecase.StatusWatchConfig {
	start := cfg.FromDate
	if start == 0 {
		start = time.Now().Unix()
	}
	return usecase.StatusWatchConfig{WindowStart: start}
}

func provideInterval(cfg *config.Config) time.Duration {
	return cfg.RetryPeriod
}

func provideAppOptions() []app.Option {
	return nil
}
