package handlers

import (
	"errors"
	"net/url"
	"time"

	"github.com/synchromes/esurat-sub001/config"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"
	"github.com/synchromes/esurat-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FileHandler struct {
	settings *services.SettingsService
}

func NewFileHandler(db *gorm.DB) *FileHandler {
	return &FileHandler{settings: services.NewSettingsService(db)}
}

func signingKey() string {
	return config.LoadStorageConfig().SigningKey
}

// UploadTemplateFile - Upload file generik ke direktori template.
func (h *FileHandler) UploadTemplateFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "File wajib diunggah", nil)
	}

	relPath, err := storage.SaveUpload(fileHeader, "templates", h.settings.MaxUploadBytes())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBadType):
			return utils.BadRequest(c, "Format file tidak diizinkan", nil)
		case errors.Is(err, storage.ErrTooLarge):
			return utils.BadRequest(c, "Ukuran file melebihi batas maksimum", nil)
		default:
			return utils.InternalServerError(c, "Gagal menyimpan file ke server")
		}
	}

	return utils.Created(c, "File berhasil diunggah", fiber.Map{
		"file_path":  relPath,
		"signed_url": utils.SignFilePath(signingKey(), relPath, 15*time.Minute),
	})
}

// ServeFile - Route /files/+. Path diverifikasi dua lapis: tanda tangan
// HMAC (exp + sig) lalu resolusi path yang menolak traversal keluar root.
func (h *FileHandler) ServeFile(c *fiber.Ctx) error {
	relPath, err := url.PathUnescape(c.Params("+"))
	if err != nil {
		return utils.BadRequest(c, "Path tidak valid", nil)
	}

	if !utils.VerifyFilePath(signingKey(), relPath, c.Query("exp"), c.Query("sig")) {
		return utils.Forbidden(c, "Tautan file tidak valid atau sudah kedaluwarsa")
	}

	abs, err := storage.Resolve(relPath)
	if err != nil {
		return utils.Forbidden(c, "Path file tidak diizinkan")
	}

	return c.SendFile(abs)
}

// SignFileURL - Mintakan URL bertanda tangan untuk path tersimpan.
func (h *FileHandler) SignFileURL(c *fiber.Ctx) error {
	relPath := c.Query("path")
	if relPath == "" {
		return utils.BadRequest(c, "Parameter path wajib diisi", nil)
	}

	if _, err := storage.Resolve(relPath); err != nil {
		return utils.Forbidden(c, "Path file tidak diizinkan")
	}

	return utils.OK(c, "URL file berhasil dibuat", fiber.Map{
		"signed_url": utils.SignFilePath(signingKey(), relPath, 15*time.Minute),
	})
}
