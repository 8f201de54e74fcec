package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makePDF builds an n-page A4 document for test input.
func makePDF(t *testing.T, pages int) []byte {
	t.Helper()

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.CellFormat(0, 20, fmt.Sprintf("halaman %d", i), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestStampOriginCentersAtRequestedPoint(t *testing.T) {
	// Halaman A4 595x842 pt, stempel 100 pt di tengah halaman.
	x, y := StampOrigin(595, 842, 0.5, 0.5, 100)

	assert.InDelta(t, 247.5, x, 0.01)
	assert.InDelta(t, 371.0, y, 0.01)

	// Dalam koordinat PDF bottom-up, titik tengah stempel harus
	// berada di (297.5, 421).
	centerX := x + 50
	centerYBottomUp := 842 - (y + 50)
	assert.InDelta(t, 297.5, centerX, 0.01)
	assert.InDelta(t, 421.0, centerYBottomUp, 0.01)
}

func TestStampOriginCornerPlacements(t *testing.T) {
	// yPercent 1.0 berarti tepi bawah halaman (bottom-up), yang dalam
	// koordinat top-down adalah y = H.
	x, y := StampOrigin(595, 842, 0, 1, 80)
	assert.InDelta(t, -40.0, x, 0.01)
	assert.InDelta(t, 802.0, y, 0.01)
}

func TestStampSinglePageWithQR(t *testing.T) {
	input := makePDF(t, 1)

	result, err := Stamp(input, "https://esurat.example/verify/abc123", []StampDescriptor{
		{Page: 1, XPercent: 0.5, YPercent: 0.5, Size: 100, Type: StampQR},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Empty(t, result.SkippedPages)
	assert.True(t, bytes.HasPrefix(result.PDF, []byte("%PDF-")))

	n, err := PageCount(result.PDF)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStampOutOfRangePageIsSkipped(t *testing.T) {
	input := makePDF(t, 1)

	result, err := Stamp(input, "https://esurat.example/verify/abc123", []StampDescriptor{
		{Page: 99, XPercent: 0.5, YPercent: 0.5, Size: 100, Type: StampQR},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, []int{99}, result.SkippedPages)

	n, err := PageCount(result.PDF)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStampRejectsUnknownType(t *testing.T) {
	input := makePDF(t, 1)

	_, err := Stamp(input, "https://esurat.example/verify/abc123", []StampDescriptor{
		{Page: 1, XPercent: 0.5, YPercent: 0.5, Size: 100, Type: StampType("SIGNATURE")},
	})
	assert.Error(t, err)
}

func TestStampCorruptInputFails(t *testing.T) {
	_, err := Stamp([]byte("bukan pdf"), "https://esurat.example/verify/x", []StampDescriptor{
		{Page: 1, XPercent: 0.5, YPercent: 0.5, Size: 100, Type: StampQR},
	})
	assert.Error(t, err)
}

func TestMergeConcatenatesFrontThenBack(t *testing.T) {
	front := makePDF(t, 2)
	back := makePDF(t, 3)

	merged := Merge(front, back)
	require.NotNil(t, merged)

	n, err := PageCount(merged)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestMergeReturnsNilOnCorruptInput(t *testing.T) {
	valid := makePDF(t, 1)

	assert.Nil(t, Merge([]byte("rusak"), valid))
	assert.Nil(t, Merge(valid, []byte("rusak")))
}

func TestDispositionSheetRenders(t *testing.T) {
	due := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	out, err := DispositionSheet(SheetData{
		AppName:      "e-Surat",
		Number:       "005/DISP/VIII/2026",
		LetterNumber: "012/UND/VIII/2026",
		LetterTitle:  "Undangan Rapat Koordinasi",
		Recipients:   "Kabag Umum, Kabag Keuangan",
		Instructions: "Mohon ditindaklanjuti sebelum batas waktu.",
		DueDate:      &due,
		CreatedBy:    "Tata Usaha",
		CreatedAt:    time.Date(2026, time.August, 31, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))

	n, err := PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
