package models

import "gorm.io/gorm"

// ArchiveCode adalah kode klasifikasi arsip yang ditempelkan
// ke surat saat diarsipkan.
type ArchiveCode struct {
	gorm.Model
	Code        string `gorm:"type:varchar(30);uniqueIndex;not null" json:"code"`
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (ArchiveCode) TableName() string {
	return "archive_codes"
}
