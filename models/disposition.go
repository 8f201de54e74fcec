package models

import (
	"time"

	"gorm.io/gorm"
)

type Disposition struct {
	gorm.Model
	LetterID uint    `gorm:"index;not null" json:"letter_id"`
	Letter   *Letter `gorm:"foreignKey:LetterID" json:"letter,omitempty"`

	// Nomor disposisi diisi terpisah oleh tata usaha
	// (permission disposition.set_number), bukan saat pembuatan.
	Number string `gorm:"type:varchar(100);index" json:"number"`

	FileDraft string `gorm:"type:varchar(255)" json:"file_draft"`
	// FilePDF adalah lembar disposisi hasil generate, dibuat on-demand.
	FilePDF string `gorm:"type:varchar(255)" json:"file_pdf"`

	Recipients   string     `gorm:"type:text;not null" json:"recipients"`
	Instructions string     `gorm:"type:text" json:"instructions"`
	DueDate      *time.Time `gorm:"type:date" json:"due_date"`

	CreatedByID uint  `gorm:"index;not null" json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
}

func (Disposition) TableName() string {
	return "dispositions"
}
