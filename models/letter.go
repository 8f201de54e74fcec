package models

import (
	"time"

	"gorm.io/gorm"
)

type LetterStatus string

const (
	StatusDraft           LetterStatus = "draft"
	StatusPendingApproval LetterStatus = "pending_approval"
	StatusApproved        LetterStatus = "approved"
	StatusRejected        LetterStatus = "rejected"
	StatusArchived        LetterStatus = "archived"
)

type Letter struct {
	gorm.Model
	Title        string `gorm:"type:varchar(255);index;not null" json:"title"`
	LetterNumber string `gorm:"type:varchar(100);index" json:"letter_number"`
	// SequenceNumber adalah urutan numerik di balik LetterNumber,
	// berjalan per kategori dan reset tiap tahun. Nol untuk draft.
	SequenceNumber int `gorm:"index" json:"sequence_number"`

	CategoryID    uint            `gorm:"index;not null" json:"category_id"`
	Category      *LetterCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ArchiveCodeID *uint           `gorm:"index" json:"archive_code_id"`
	ArchiveCode   *ArchiveCode    `gorm:"foreignKey:ArchiveCodeID" json:"archive_code,omitempty"`

	Status LetterStatus `gorm:"type:varchar(30);default:'draft';not null;index" json:"status"`

	// Path file relatif terhadap UPLOAD_DIR. FileFinal baru terisi
	// setelah surat disetujui dan distempel QR.
	FileDraft string `gorm:"type:varchar(255)" json:"file_draft"`
	FileFinal string `gorm:"type:varchar(255)" json:"file_final"`

	// Kode unik yang di-encode ke QR stempel untuk verifikasi publik.
	VerificationCode string `gorm:"type:varchar(64);index" json:"verification_code"`

	// Penempatan stempel QR: halaman 1-based, posisi sebagai fraksi
	// lebar/tinggi halaman, ukuran sisi persegi dalam point.
	StampPage     int     `gorm:"default:1" json:"stamp_page"`
	StampXPercent float64 `gorm:"default:0.5" json:"stamp_x_percent"`
	StampYPercent float64 `gorm:"default:0.5" json:"stamp_y_percent"`
	StampSize     float64 `gorm:"default:0" json:"stamp_size"`

	Notes string `gorm:"type:text" json:"notes"`

	LetterDate *time.Time `gorm:"type:date" json:"letter_date"`

	CreatedByID  uint  `gorm:"index;not null" json:"created_by_id"`
	CreatedBy    *User `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	ApprovedByID *uint `gorm:"index" json:"approved_by_id"`
	ApprovedBy   *User `gorm:"foreignKey:ApprovedByID" json:"approved_by,omitempty"`

	Dispositions []Disposition `gorm:"foreignKey:LetterID" json:"dispositions,omitempty"`
}

func (Letter) TableName() string {
	return "letters"
}

func (l *Letter) IsEditable() bool {
	return l.Status == StatusDraft || l.Status == StatusRejected
}

func (s LetterStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusRejected, StatusArchived:
		return true
	default:
		return false
	}
}
