package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramClient mengirim notifikasi ke satu chat lewat Bot API.
type TelegramClient struct {
	client   *resty.Client
	botToken string
	chatID   string
}

func NewTelegramClient(botToken, chatID string) *TelegramClient {
	return &TelegramClient{
		client:   resty.New().SetTimeout(10 * time.Second),
		botToken: botToken,
		chatID:   chatID,
	}
}

func (t *TelegramClient) Configured() bool {
	return t.botToken != "" && t.chatID != ""
}

func (t *TelegramClient) SendMessage(ctx context.Context, text string) error {
	if !t.Configured() {
		return fmt.Errorf("telegram bot is not configured")
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"chat_id": t.chatID,
			"text":    text,
		}).
		Post(fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, t.botToken))

	if err != nil {
		return fmt.Errorf("telegram api unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("telegram api returned %s: %s", resp.Status(), resp.String())
	}

	return nil
}
