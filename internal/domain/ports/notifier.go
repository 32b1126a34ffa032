package ports

import "context"

// Notifier delivers plain-text messages to the configured chat (e.g. Telegram).
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
