package pdf

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdi"
	"github.com/signintech/gopdf"
	qrcode "github.com/skip2/go-qrcode"
)

type StampType string

const (
	StampQR    StampType = "QR"
	StampImage StampType = "IMAGE"
)

// StampDescriptor menempatkan satu stempel pada dokumen. Page 1-based;
// XPercent/YPercent adalah fraksi lebar/tinggi halaman yang menunjuk TITIK
// TENGAH stempel, dengan YPercent dihitung dari bawah halaman (koordinat
// PDF). Size adalah sisi persegi dalam point.
type StampDescriptor struct {
	Page     int
	XPercent float64
	YPercent float64
	Size     float64
	Type     StampType
	// Data berisi PNG base64 untuk StampImage; diabaikan untuk StampQR.
	Data string
}

// StampResult adalah dokumen hasil stempel beserta halaman yang dilewati.
type StampResult struct {
	PDF []byte
	// SkippedPages mencatat nomor halaman descriptor yang di luar jangkauan
	// dokumen. Halaman tak valid dilewati tanpa error; caller yang memutuskan
	// untuk menganggapnya serius atau tidak.
	SkippedPages []int
}

const defaultStampSize = 80.0

// Stamp menempelkan QR verifikasi dan/atau gambar tanda tangan ke dokumen.
// Seluruh halaman sumber di-import ulang, stempel digambar di atasnya, lalu
// dokumen diserialisasi kembali. verifyURL adalah isi QR.
func Stamp(input []byte, verifyURL string, stamps []StampDescriptor) (result *StampResult, err error) {
	// gofpdi memakai panic untuk PDF rusak; ubah jadi error biasa.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to process pdf: %v", r)
		}
	}()

	pageCount, pageSizes, err := inspect(input)
	if err != nil {
		return nil, err
	}

	byPage := make(map[int][]StampDescriptor)
	var skipped []int
	for _, s := range stamps {
		if s.Page < 1 || s.Page > pageCount {
			skipped = append(skipped, s.Page)
			continue
		}
		byPage[s.Page] = append(byPage[s.Page], s)
	}

	doc := gopdf.GoPdf{}
	doc.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})

	var rs io.ReadSeeker = bytes.NewReader(input)
	for p := 1; p <= pageCount; p++ {
		w, h := pageSizes[p][0], pageSizes[p][1]

		doc.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{W: w, H: h}})
		tpl := doc.ImportPageStream(&rs, p, "/MediaBox")
		doc.UseImportedTemplate(tpl, 0, 0, w, h)

		for _, s := range byPage[p] {
			if err := drawStamp(&doc, s, w, h, verifyURL); err != nil {
				return nil, err
			}
		}
	}

	out := doc.GetBytesPdf()
	return &StampResult{PDF: out, SkippedPages: skipped}, nil
}

func drawStamp(doc *gopdf.GoPdf, s StampDescriptor, pageW, pageH float64, verifyURL string) error {
	size := s.Size
	if size <= 0 {
		size = defaultStampSize
	}

	var png []byte
	switch s.Type {
	case StampQR:
		encoded, err := qrcode.Encode(verifyURL, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("failed to encode qr: %w", err)
		}
		png = encoded
	case StampImage:
		data := s.Data
		if i := strings.Index(data, ","); i >= 0 && strings.HasPrefix(data, "data:") {
			data = data[i+1:]
		}
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return fmt.Errorf("failed to decode stamp image: %w", err)
		}
		png = decoded
	default:
		return fmt.Errorf("unknown stamp type %q", s.Type)
	}

	x, y := StampOrigin(pageW, pageH, s.XPercent, s.YPercent, size)

	holder, err := gopdf.ImageHolderByBytes(png)
	if err != nil {
		return fmt.Errorf("failed to load stamp image: %w", err)
	}
	if err := doc.ImageByHolder(holder, x, y, &gopdf.Rect{W: size, H: size}); err != nil {
		return fmt.Errorf("failed to place stamp image: %w", err)
	}

	// Bingkai tipis hanya untuk stempel QR.
	if s.Type == StampQR {
		doc.SetStrokeColor(60, 60, 60)
		doc.SetLineWidth(0.7)
		if err := doc.Rectangle(x, y, x+size, y+size, "D", 0, 0); err != nil {
			return fmt.Errorf("failed to draw stamp border: %w", err)
		}
	}

	return nil
}

// StampOrigin menghitung sudut kiri-atas stempel dalam koordinat gopdf
// (origin kiri-atas). Titik tengah yang diminta adalah
// (xPercent*W, (1-yPercent)*H) pada koordinat PDF bottom-up, yang setara
// dengan (xPercent*W, yPercent*H) dihitung dari atas.
func StampOrigin(pageW, pageH, xPercent, yPercent, size float64) (x, y float64) {
	centerX := xPercent * pageW
	centerY := yPercent * pageH
	return centerX - size/2, centerY - size/2
}

// inspect mengembalikan jumlah halaman dan ukuran tiap halaman (point).
func inspect(input []byte) (int, map[int][2]float64, error) {
	imp := gofpdi.NewImporter()

	var rs io.ReadSeeker = bytes.NewReader(input)
	imp.SetSourceStream(&rs)

	n := imp.GetNumPages()
	if n < 1 {
		return 0, nil, fmt.Errorf("document has no pages")
	}

	raw := imp.GetPageSizes()
	sizes := make(map[int][2]float64, n)
	for p := 1; p <= n; p++ {
		box, ok := raw[p]["/MediaBox"]
		if !ok {
			return 0, nil, fmt.Errorf("page %d has no media box", p)
		}
		sizes[p] = [2]float64{box["w"], box["h"]}
	}

	return n, sizes, nil
}

// PageCount menghitung jumlah halaman sebuah dokumen.
func PageCount(input []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n = 0
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	n, _, err = inspect(input)
	return n, err
}
