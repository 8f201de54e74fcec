package events

import (
	"log"

	"github.com/synchromes/esurat-sub001/models"
)

// LetterEventType mendefinisikan jenis event terkait siklus hidup surat
type LetterEventType string

const (
	// LetterSubmitted dipublikasikan saat surat diajukan untuk persetujuan
	LetterSubmitted LetterEventType = "LetterSubmitted"

	// LetterApproved dipublikasikan saat surat disetujui dan distempel
	LetterApproved LetterEventType = "LetterApproved"

	// LetterRejected dipublikasikan saat surat ditolak
	LetterRejected LetterEventType = "LetterRejected"

	// DispositionCreated dipublikasikan saat disposisi baru dibuat
	DispositionCreated LetterEventType = "DispositionCreated"
)

// LetterEvent adalah payload untuk event surat
type LetterEvent struct {
	Type        LetterEventType
	Letter      models.Letter
	Disposition *models.Disposition // hanya terisi untuk DispositionCreated
	Note        string
}

// LetterEventBus adalah channel untuk menangani event surat.
// Channel ini di-buffer untuk mencegah blocking pada handler API
// saat mempublikasikan event.
var LetterEventBus = make(chan LetterEvent, 100)

// Publish mengirim event tanpa pernah memblokir handler yang memicunya.
// Bila buffer penuh (notifier mati atau macet) event dibuang dan dicatat;
// notifikasi adalah kabar tambahan, bukan bagian dari transaksi surat.
func Publish(event LetterEvent) {
	select {
	case LetterEventBus <- event:
	default:
		log.Printf("letter event bus full, dropping %s event for letter %d", event.Type, event.Letter.ID)
	}
}
