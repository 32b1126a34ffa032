package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"homework-bot/internal/adapter/logging"
	"homework-bot/internal/di"
	"homework-bot/internal/domain/model"
)

func main() {
	console := logging.New(logging.NewConsole(os.Stdout))

	application, cleanup, err := di.InitializeApp()
	if err != nil {
		if !errors.Is(err, model.ErrConfig) {
			// config errors are already reported by the startup gate
			console.Fatal(context.Background(), "failed to initialize application", "error", err)
		}
		os.Exit(1)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		console.Error(ctx, "application runtime error", "error", err)
		stop()
		cleanup()
		os.Exit(1)
	}
}
