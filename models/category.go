package models

import "gorm.io/gorm"

// LetterCategory mengelompokkan surat (undangan, keputusan, dst).
// Code dipakai sebagai komponen nomor surat.
type LetterCategory struct {
	gorm.Model
	Name  string `gorm:"type:varchar(150);uniqueIndex;not null" json:"name"`
	Code  string `gorm:"type:varchar(30);uniqueIndex;not null" json:"code"`
	Color string `gorm:"type:varchar(20)" json:"color"`
}

func (LetterCategory) TableName() string {
	return "letter_categories"
}
