package utils

import (
	"testing"
	"time"

	"github.com/synchromes/esurat-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func seqTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Letter{}); err != nil {
		t.Fatalf("migrate letters: %v", err)
	}
	return db
}

func seedSequence(t *testing.T, db *gorm.DB, categoryID uint, seq int, at time.Time) {
	t.Helper()

	letter := models.Letter{
		Title:          "Surat uji",
		CategoryID:     categoryID,
		SequenceNumber: seq,
		Status:         models.StatusPendingApproval,
		CreatedByID:    1,
	}
	letter.CreatedAt = at
	if err := db.Create(&letter).Error; err != nil {
		t.Fatalf("seed letter: %v", err)
	}
}

func TestNextLetterNumberPerCategoryPerYear(t *testing.T) {
	db := seqTestDB(t)

	aug2026 := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)
	seedSequence(t, db, 1, 3, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC))
	seedSequence(t, db, 1, 7, time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC))
	seedSequence(t, db, 2, 2, time.Date(2026, time.May, 5, 0, 0, 0, 0, time.UTC))
	seedSequence(t, db, 1, 40, time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC))
	// Draft tanpa nomor tidak boleh ikut dihitung.
	seedSequence(t, db, 1, 0, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC))

	seq, number, err := NextLetterNumber(db, 1, "UND", aug2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq != 8 {
		t.Fatalf("expected sequence 8, got %d", seq)
	}
	if number != "008/UND/VIII/2026" {
		t.Fatalf("unexpected number: %q", number)
	}

	seq, _, err = NextLetterNumber(db, 2, "SK", aug2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq != 3 {
		t.Fatalf("expected sequence 3 for second category, got %d", seq)
	}
}

func TestNextLetterNumberResetsYearly(t *testing.T) {
	db := seqTestDB(t)

	seedSequence(t, db, 1, 40, time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC))

	seq, number, err := NextLetterNumber(db, 1, "UND", time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seq != 1 {
		t.Fatalf("expected sequence to reset to 1, got %d", seq)
	}
	if number != "001/UND/I/2026" {
		t.Fatalf("unexpected number: %q", number)
	}
}

func TestFormatLetterNumber(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)

	got := FormatLetterNumber(7, "UND", at)
	want := "007/UND/VIII/2026"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatLetterNumberJanuaryAndDecember(t *testing.T) {
	jan := FormatLetterNumber(1, "SK", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if jan != "001/SK/I/2026" {
		t.Fatalf("unexpected january number: %q", jan)
	}

	dec := FormatLetterNumber(120, "SK", time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
	if dec != "120/SK/XII/2026" {
		t.Fatalf("unexpected december number: %q", dec)
	}
}
