package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"homework-bot/internal/domain/model"
	"homework-bot/internal/domain/ports"
)

// Sender is the part of tgbotapi.BotAPI the notifier needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier sends plain-text messages to one Telegram chat.
type Notifier struct {
	bot    Sender
	chatID string
	logger ports.Logger
}

var _ ports.Notifier = (*Notifier)(nil)

// NewBot creates a Telegram bot client without contacting Telegram.
// A bad token or an unreachable API surfaces on the first send.
func NewBot(token string, timeout time.Duration) *tgbotapi.BotAPI {
	bot := &tgbotapi.BotAPI{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
		Buffer: 100,
	}
	bot.SetAPIEndpoint(tgbotapi.APIEndpoint)
	return bot
}

// NewNotifier creates a notifier posting to chatID, which is either a numeric
// chat id or an @channel username.
func NewNotifier(bot Sender, chatID string, logger ports.Logger) *Notifier {
	return &Notifier{
		bot:    bot,
		chatID: strings.TrimSpace(chatID),
		logger: logger,
	}
}

// Notify sends text to the configured chat.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	const op = "send message"

	n.logger.Info(ctx, "sending telegram message", "chat_id", n.chatID)

	msg, err := newMessage(n.chatID, text)
	if err != nil {
		n.logger.Error(ctx, "telegram message was not sent", "error", err)
		return &model.Error{Kind: model.KindDelivery, Op: op, Err: err}
	}

	sent, err := n.bot.Send(msg)
	if err != nil {
		n.logger.Error(ctx, "telegram message was not sent", "error", err, "code", errorCode(err))
		return &model.Error{Kind: model.KindDelivery, Op: op, Err: err}
	}

	n.logger.Debug(ctx, "telegram message sent", "message_id", sent.MessageID)
	return nil
}

func newMessage(chatID, text string) (tgbotapi.MessageConfig, error) {
	if chatID == "" {
		return tgbotapi.MessageConfig{}, errors.New("chat id is empty")
	}
	if strings.HasPrefix(chatID, "@") {
		return tgbotapi.NewMessageToChannel(chatID, text), nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("invalid chat_id: %w", err)
	}
	return tgbotapi.NewMessage(id, text), nil
}

// errorCode extracts the Bot API error code, 0 when the failure was not an API answer.
func errorCode(err error) int {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return 0
}
