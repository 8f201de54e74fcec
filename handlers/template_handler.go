package handlers

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/synchromes/esurat-sub001/dto/masters"
	"github.com/synchromes/esurat-sub001/middleware"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"
	"github.com/synchromes/esurat-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TemplateHandler struct {
	db       *gorm.DB
	settings *services.SettingsService
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{
		db:       db,
		settings: services.NewSettingsService(db),
	}
}

// CreateTemplate - Upload file template surat beserta judulnya.
func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req masters.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "File template wajib diunggah", nil)
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

	template := models.Template{
		Title:      strings.TrimSpace(req.Title),
		FileURL:    relPath,
		FileType:   strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."),
		UploaderID: claims.UserID,
	}

	if err := h.db.Create(&template).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan template")
	}

	return utils.Created(c, "Template berhasil dibuat", template)
}

func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	var templates []models.Template
	if err := h.db.Preload("Uploader").Order("created_at DESC").Find(&templates).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat daftar template")
	}

	return utils.OK(c, "Daftar template berhasil diambil", templates)
}

func (h *TemplateHandler) GetTemplateByID(c *fiber.Ctx) error {
	templateID, _ := c.ParamsInt("id")

	var template models.Template
	if err := h.db.Preload("Uploader").First(&template, templateID).Error; err != nil {
		return utils.NotFound(c, "Template tidak ditemukan")
	}

	return utils.OK(c, "Detail template berhasil diambil", template)
}

func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	templateID, _ := c.ParamsInt("id")

	var template models.Template
	if err := h.db.First(&template, templateID).Error; err != nil {
		return utils.NotFound(c, "Template tidak ditemukan")
	}

	var req masters.TemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	template.Title = strings.TrimSpace(req.Title)

	// File pengganti opsional.
	if fileHeader, err := c.FormFile("file"); err == nil {
		relPath, err := storage.SaveUpload(fileHeader, "templates", h.settings.MaxUploadBytes())
		if err != nil {
			return utils.InternalServerError(c, "Gagal menyimpan file ke server")
		}
		if template.FileURL != "" {
			_ = storage.DeleteFile(template.FileURL)
		}
		template.FileURL = relPath
		template.FileType = strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	}

	if err := h.db.Save(&template).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan perubahan template")
	}

	return utils.OK(c, "Template berhasil diperbarui", template)
}

func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	templateID, _ := c.ParamsInt("id")

	var template models.Template
	if err := h.db.First(&template, templateID).Error; err != nil {
		return utils.NotFound(c, "Template tidak ditemukan")
	}

	if err := h.db.Delete(&template).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus template")
	}

	if template.FileURL != "" {
		_ = storage.DeleteFile(template.FileURL)
	}

	return utils.OK(c, "Template berhasil dihapus", nil)
}
