package models

import "gorm.io/gorm"

type Template struct {
	gorm.Model
	Title    string `gorm:"type:varchar(255);not null" json:"title"`
	FileURL  string `gorm:"type:varchar(255);not null" json:"file_url"`
	FileType string `gorm:"type:varchar(20)" json:"file_type"`

	UploaderID uint  `gorm:"index;not null" json:"uploader_id"`
	Uploader   *User `gorm:"foreignKey:UploaderID" json:"uploader,omitempty"`
}

func (Template) TableName() string {
	return "templates"
}
