package handlers

import (
	"fmt"

	"github.com/synchromes/esurat-sub001/dto/masters"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ArchiveCodeHandler struct {
	db *gorm.DB
}

func NewArchiveCodeHandler(db *gorm.DB) *ArchiveCodeHandler {
	return &ArchiveCodeHandler{db: db}
}

func (h *ArchiveCodeHandler) CreateArchiveCode(c *fiber.Ctx) error {
	var req masters.ArchiveCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	code := req.ToModel()

	var count int64
	h.db.Model(&models.ArchiveCode{}).Where("code = ?", code.Code).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Kode arsip sudah dipakai")
	}

	if err := h.db.Create(&code).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan kode arsip")
	}

	return utils.Created(c, "Kode arsip berhasil dibuat", code)
}

func (h *ArchiveCodeHandler) ListArchiveCodes(c *fiber.Ctx) error {
	var codes []models.ArchiveCode
	if err := h.db.Order("code ASC").Find(&codes).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat daftar kode arsip")
	}

	return utils.OK(c, "Daftar kode arsip berhasil diambil", codes)
}

func (h *ArchiveCodeHandler) GetArchiveCodeByID(c *fiber.Ctx) error {
	codeID, _ := c.ParamsInt("id")

	var code models.ArchiveCode
	if err := h.db.First(&code, codeID).Error; err != nil {
		return utils.NotFound(c, "Kode arsip tidak ditemukan")
	}

	return utils.OK(c, "Detail kode arsip berhasil diambil", code)
}

func (h *ArchiveCodeHandler) UpdateArchiveCode(c *fiber.Ctx) error {
	codeID, _ := c.ParamsInt("id")

	var code models.ArchiveCode
	if err := h.db.First(&code, codeID).Error; err != nil {
		return utils.NotFound(c, "Kode arsip tidak ditemukan")
	}

	var req masters.ArchiveCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	updated := req.ToModel()

	var count int64
	h.db.Model(&models.ArchiveCode{}).
		Where("code = ? AND id != ?", updated.Code, code.ID).
		Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Kode arsip sudah dipakai")
	}

	code.Code = updated.Code
	code.Name = updated.Name
	code.Description = updated.Description

	if err := h.db.Save(&code).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan perubahan kode arsip")
	}

	return utils.OK(c, "Kode arsip berhasil diperbarui", code)
}

func (h *ArchiveCodeHandler) DeleteArchiveCode(c *fiber.Ctx) error {
	codeID, _ := c.ParamsInt("id")

	var code models.ArchiveCode
	if err := h.db.First(&code, codeID).Error; err != nil {
		return utils.NotFound(c, "Kode arsip tidak ditemukan")
	}

	var letterCount int64
	h.db.Model(&models.Letter{}).Where("archive_code_id = ?", code.ID).Count(&letterCount)
	if letterCount > 0 {
		return utils.Conflict(c, fmt.Sprintf("Kode arsip tidak bisa dihapus, masih dipakai %d surat", letterCount))
	}

	if err := h.db.Delete(&code).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus kode arsip")
	}

	return utils.OK(c, "Kode arsip berhasil dihapus", nil)
}
