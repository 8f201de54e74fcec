package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/synchromes/esurat-sub001/utils/events"
	"github.com/synchromes/esurat-sub001/utils/notify"

	"gorm.io/gorm"
)

// Notifier mengkonsumsi LetterEventBus dan meneruskan kabar ke gateway
// WhatsApp dan Telegram. Kegagalan kirim hanya dicatat di log; request
// yang memicu event tidak pernah ikut gagal.
type Notifier struct {
	settings *SettingsService
}

func NewNotifier(db *gorm.DB) *Notifier {
	return &Notifier{settings: NewSettingsService(db)}
}

// Run memblokir membaca bus sampai channel ditutup. Jalankan sebagai
// goroutine dari main.
func (n *Notifier) Run(bus <-chan events.LetterEvent) {
	for event := range bus {
		n.dispatch(event)
	}
}

func (n *Notifier) dispatch(event events.LetterEvent) {
	if !n.settings.Bool("notify.enabled") {
		return
	}

	text := n.formatMessage(event)
	if text == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	wa := notify.NewWhatsAppClient(
		n.settings.String("wa.gateway_url"),
		n.settings.String("wa.session"),
		n.settings.String("wa.api_key"),
	)
	if wa.Configured() {
		if err := wa.SendMessage(ctx, n.settings.String("wa.recipient"), text); err != nil {
			log.Printf("whatsapp notification failed: %v", err)
		}
	}

	tg := notify.NewTelegramClient(
		n.settings.String("telegram.bot_token"),
		n.settings.String("telegram.chat_id"),
	)
	if tg.Configured() {
		if err := tg.SendMessage(ctx, text); err != nil {
			log.Printf("telegram notification failed: %v", err)
		}
	}
}

func (n *Notifier) formatMessage(event events.LetterEvent) string {
	appName := n.settings.String("app.name")

	switch event.Type {
	case events.LetterSubmitted:
		return fmt.Sprintf("[%s] Surat %q diajukan dan menunggu persetujuan.", appName, event.Letter.Title)
	case events.LetterApproved:
		return fmt.Sprintf("[%s] Surat %q disetujui dengan nomor %s.", appName, event.Letter.Title, event.Letter.LetterNumber)
	case events.LetterRejected:
		msg := fmt.Sprintf("[%s] Surat %q ditolak.", appName, event.Letter.Title)
		if event.Note != "" {
			msg += " Catatan: " + event.Note
		}
		return msg
	case events.DispositionCreated:
		if event.Disposition == nil {
			return ""
		}
		return fmt.Sprintf("[%s] Disposisi baru untuk surat %q kepada %s.", appName, event.Letter.Title, event.Disposition.Recipients)
	default:
		return ""
	}
}
