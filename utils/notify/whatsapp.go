package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// WhatsAppClient berbicara ke gateway WhatsApp internal
// (endpoint send-message dengan sesi dan api key).
type WhatsAppClient struct {
	client     *resty.Client
	gatewayURL string
	session    string
	apiKey     string
}

func NewWhatsAppClient(gatewayURL, session, apiKey string) *WhatsAppClient {
	return &WhatsAppClient{
		client:     resty.New().SetTimeout(10 * time.Second),
		gatewayURL: gatewayURL,
		session:    session,
		apiKey:     apiKey,
	}
}

func (w *WhatsAppClient) Configured() bool {
	return w.gatewayURL != "" && w.session != ""
}

// SendMessage mengirim pesan teks ke satu nomor tujuan. Sekali coba,
// gagal langsung dikembalikan; tidak ada retry di sini.
func (w *WhatsAppClient) SendMessage(ctx context.Context, to, text string) error {
	if !w.Configured() {
		return fmt.Errorf("whatsapp gateway is not configured")
	}

	resp, err := w.client.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", w.apiKey).
		SetBody(map[string]string{
			"session": w.session,
			"to":      to,
			"text":    text,
		}).
		Post(w.gatewayURL + "/send-message")

	if err != nil {
		return fmt.Errorf("whatsapp gateway unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("whatsapp gateway returned %s: %s", resp.Status(), resp.String())
	}

	return nil
}
