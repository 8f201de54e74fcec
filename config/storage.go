package config

import (
	"os"
)

type StorageConfig struct {
	// UploadDir adalah root semua file tersimpan (surat, disposisi, template).
	UploadDir string
	// SigningKey dipakai menandatangani URL file; default ke JWT_SECRET.
	SigningKey string
}

func LoadStorageConfig() StorageConfig {
	key := os.Getenv("FILE_SIGNING_KEY")
	if key == "" {
		key = os.Getenv("JWT_SECRET")
	}

	return StorageConfig{
		UploadDir:  os.Getenv("UPLOAD_DIR"),
		SigningKey: key,
	}
}
