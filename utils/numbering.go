package utils

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

var romanMonths = [...]string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII",
}

// NextLetterNumber generates the next letter number for a category.
// On MySQL it takes a row-level lock (FOR UPDATE) to prevent race
// conditions when multiple users submit letters simultaneously.
//
// Sequences run independently per category and reset yearly. Draft letters
// never hold a sequence (sequence_number = 0), so they are excluded by the
// > 0 filter. The rendered format is "007/UND/VIII/2026".
func NextLetterNumber(tx *gorm.DB, categoryID uint, categoryCode string, at time.Time) (int, string, error) {
	var lastSeq int

	yearStart := time.Date(at.Year(), time.January, 1, 0, 0, 0, 0, at.Location())
	yearEnd := yearStart.AddDate(1, 0, 0)

	query := `
		SELECT COALESCE(MAX(sequence_number), 0)
		FROM letters
		WHERE category_id = ? AND created_at >= ? AND created_at < ? AND sequence_number > 0`
	if tx.Dialector.Name() == "mysql" {
		query += " FOR UPDATE"
	}

	err := tx.Raw(query, categoryID, yearStart, yearEnd).Scan(&lastSeq).Error
	if err != nil {
		return 0, "", err
	}

	seq := lastSeq + 1
	number := FormatLetterNumber(seq, categoryCode, at)
	return seq, number, nil
}

// FormatLetterNumber renders a sequence as the canonical letter number.
func FormatLetterNumber(seq int, categoryCode string, at time.Time) string {
	return fmt.Sprintf("%03d/%s/%s/%d", seq, categoryCode, romanMonths[at.Month()-1], at.Year())
}
