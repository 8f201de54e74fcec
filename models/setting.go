package models

import "time"

type SettingType string

const (
	SettingString SettingType = "string"
	SettingInt    SettingType = "int"
	SettingBool   SettingType = "bool"
)

// Setting adalah konfigurasi runtime yang disimpan di database,
// dibaca lewat services.Settings dengan kunci dan default yang terdaftar.
type Setting struct {
	Key       string      `gorm:"type:varchar(100);primaryKey" json:"key"`
	Value     string      `gorm:"type:text" json:"value"`
	Type      SettingType `gorm:"type:varchar(10);default:'string';not null" json:"type"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

func (t SettingType) IsValid() bool {
	switch t {
	case SettingString, SettingInt, SettingBool:
		return true
	default:
		return false
	}
}
