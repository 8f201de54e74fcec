package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/synchromes/esurat-sub001/models"

	"gorm.io/gorm"
)

var ErrUnknownSetting = errors.New("unknown setting key")

// SettingDef mendeskripsikan satu kunci setting yang dikenal sistem
// beserta tipe dan nilai default-nya. Kunci di luar registry ditolak
// saat update; pembacaan kunci hilang/rusak jatuh ke default.
type SettingDef struct {
	Key     string
	Type    models.SettingType
	Default string
}

var settingRegistry = []SettingDef{
	{Key: "app.name", Type: models.SettingString, Default: "e-Surat"},
	{Key: "app.base_url", Type: models.SettingString, Default: "http://localhost:8080"},
	{Key: "qr.default_size", Type: models.SettingInt, Default: "80"},
	{Key: "upload.max_mb", Type: models.SettingInt, Default: "10"},
	{Key: "notify.enabled", Type: models.SettingBool, Default: "true"},
	{Key: "wa.gateway_url", Type: models.SettingString, Default: ""},
	{Key: "wa.session", Type: models.SettingString, Default: ""},
	{Key: "wa.api_key", Type: models.SettingString, Default: ""},
	{Key: "wa.recipient", Type: models.SettingString, Default: ""},
	{Key: "telegram.bot_token", Type: models.SettingString, Default: ""},
	{Key: "telegram.chat_id", Type: models.SettingString, Default: ""},
}

func lookupSettingDef(key string) (SettingDef, bool) {
	for _, def := range settingRegistry {
		if def.Key == key {
			return def, true
		}
	}
	return SettingDef{}, false
}

// SettingDefs mengembalikan salinan registry untuk seeding dan listing.
func SettingDefs() []SettingDef {
	out := make([]SettingDef, len(settingRegistry))
	copy(out, settingRegistry)
	return out
}

type SettingsService struct {
	db *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// String membaca nilai string sebuah kunci; default bila baris tidak ada.
func (s *SettingsService) String(key string) string {
	def, ok := lookupSettingDef(key)
	if !ok {
		return ""
	}

	var row models.Setting
	if err := s.db.First(&row, "`key` = ?", key).Error; err != nil {
		return def.Default
	}
	return row.Value
}

// Int membaca nilai int; default bila baris hilang atau tidak bisa diparse.
func (s *SettingsService) Int(key string) int {
	raw := s.String(key)

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		def, ok := lookupSettingDef(key)
		if !ok {
			return 0
		}
		n, _ = strconv.Atoi(def.Default)
	}
	return n
}

// Bool membaca nilai bool; default bila baris hilang atau tidak bisa diparse.
func (s *SettingsService) Bool(key string) bool {
	raw := s.String(key)

	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		def, ok := lookupSettingDef(key)
		if !ok {
			return false
		}
		b, _ = strconv.ParseBool(def.Default)
	}
	return b
}

// Set menulis satu kunci terdaftar. Nilai divalidasi terhadap tipe kunci.
func (s *SettingsService) Set(key, value string) error {
	def, ok := lookupSettingDef(key)
	if !ok {
		return ErrUnknownSetting
	}

	value = strings.TrimSpace(value)
	switch def.Type {
	case models.SettingInt:
		if _, err := strconv.Atoi(value); err != nil {
			return errors.New("value must be an integer")
		}
	case models.SettingBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.New("value must be a boolean")
		}
	}

	row := models.Setting{Key: key, Value: value, Type: def.Type}
	return s.db.Save(&row).Error
}

// All mengembalikan seluruh kunci terdaftar dengan nilai efektifnya
// (baris database bila ada, default bila tidak).
func (s *SettingsService) All() ([]models.Setting, error) {
	var rows []models.Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, err
	}

	byKey := make(map[string]models.Setting, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r
	}

	out := make([]models.Setting, 0, len(settingRegistry))
	for _, def := range settingRegistry {
		if row, ok := byKey[def.Key]; ok {
			out = append(out, row)
			continue
		}
		out = append(out, models.Setting{Key: def.Key, Value: def.Default, Type: def.Type})
	}

	return out, nil
}

// MaxUploadBytes menerjemahkan upload.max_mb ke byte.
func (s *SettingsService) MaxUploadBytes() int64 {
	return int64(s.Int("upload.max_mb")) * 1024 * 1024
}

// VerifyURL membentuk URL verifikasi publik yang di-encode ke QR stempel.
func (s *SettingsService) VerifyURL(code string) string {
	base := strings.TrimRight(s.String("app.base_url"), "/")
	return base + "/verify/" + code
}
