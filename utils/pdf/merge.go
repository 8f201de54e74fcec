package pdf

import (
	"bytes"
	"io"
	"log"

	"github.com/signintech/gopdf"
)

// Merge menggabungkan dua dokumen: seluruh halaman front lalu seluruh
// halaman back, urutan asli dipertahankan. Mengembalikan nil bila salah
// satu dokumen gagal dimuat atau disalin; caller memperlakukan nil sebagai
// "gabungan tidak tersedia" dan menjawab dengan pesan error sendiri.
func Merge(front, back []byte) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pdf merge failed: %v", r)
			out = nil
		}
	}()

	doc := gopdf.GoPdf{}
	doc.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})

	if !appendAll(&doc, front) {
		return nil
	}
	if !appendAll(&doc, back) {
		return nil
	}

	return doc.GetBytesPdf()
}

func appendAll(doc *gopdf.GoPdf, src []byte) bool {
	n, sizes, err := inspect(src)
	if err != nil {
		log.Printf("pdf merge: cannot inspect source: %v", err)
		return false
	}

	var rs io.ReadSeeker = bytes.NewReader(src)
	for p := 1; p <= n; p++ {
		w, h := sizes[p][0], sizes[p][1]
		doc.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{W: w, H: h}})
		tpl := doc.ImportPageStream(&rs, p, "/MediaBox")
		doc.UseImportedTemplate(tpl, 0, 0, w, h)
	}

	return true
}
