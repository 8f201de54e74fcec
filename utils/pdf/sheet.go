package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// SheetData adalah isi lembar disposisi yang di-generate on-demand.
type SheetData struct {
	AppName      string
	Number       string
	LetterNumber string
	LetterTitle  string
	Recipients   string
	Instructions string
	DueDate      *time.Time
	CreatedBy    string
	CreatedAt    time.Time
}

// DispositionSheet merender lembar disposisi satu halaman A4.
func DispositionSheet(data SheetData) ([]byte, error) {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetMargins(48, 56, 48)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 20, data.AppName, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 18, "LEMBAR DISPOSISI", "", 1, "C", false, 0, "")

	doc.Ln(10)
	doc.SetLineWidth(1)
	x, y := doc.GetX(), doc.GetY()
	doc.Line(x, y, x+499, y)
	doc.Ln(14)

	doc.SetFont("Helvetica", "", 11)
	row := func(label, value string) {
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(130, 16, label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.MultiCell(0, 16, ": "+value, "", "L", false)
	}

	row("Nomor Disposisi", data.Number)
	row("Nomor Surat", data.LetterNumber)
	row("Perihal", data.LetterTitle)
	row("Diteruskan Kepada", formatRecipients(data.Recipients))

	due := "-"
	if data.DueDate != nil {
		due = data.DueDate.Format("02-01-2006")
	}
	row("Batas Waktu", due)

	doc.Ln(8)
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 16, "Isi Instruksi:", "", 1, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 16, data.Instructions, "1", "L", false)

	doc.Ln(20)
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 14, fmt.Sprintf("Dibuat oleh %s, %s", data.CreatedBy, data.CreatedAt.Format("02-01-2006 15:04")), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render disposition sheet: %w", err)
	}
	return buf.Bytes(), nil
}

func formatRecipients(recipients string) string {
	parts := strings.Split(recipients, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
