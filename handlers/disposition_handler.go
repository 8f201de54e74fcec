package handlers

import (
	"strings"
	"time"

	dispdto "github.com/synchromes/esurat-sub001/dto/dispositions"
	"github.com/synchromes/esurat-sub001/middleware"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"
	"github.com/synchromes/esurat-sub001/utils/events"
	"github.com/synchromes/esurat-sub001/utils/pdf"
	"github.com/synchromes/esurat-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DispositionHandler struct {
	db       *gorm.DB
	letters  *services.LetterService
	settings *services.SettingsService
}

func NewDispositionHandler(db *gorm.DB) *DispositionHandler {
	return &DispositionHandler{
		db:       db,
		letters:  services.NewLetterService(db),
		settings: services.NewSettingsService(db),
	}
}

// CreateDisposition - Buat disposisi pada surat. Nomor disposisi TIDAK
// diisi di sini; itu wewenang terpisah (disposition.set_number).
func (h *DispositionHandler) CreateDisposition(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req dispdto.CreateDispositionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	letter, err := h.letters.GetByID(req.LetterID)
	if err != nil {
		return utils.BadRequest(c, "Surat tidak ditemukan", nil)
	}

	if letter.Status == models.StatusDraft {
		return utils.Conflict(c, "Surat berstatus draft belum bisa didisposisikan")
	}

	disposition := req.ToModel()
	disposition.CreatedByID = claims.UserID

	if err := h.db.Create(&disposition).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan disposisi")
	}

	events.Publish(events.LetterEvent{
		Type:        events.DispositionCreated,
		Letter:      *letter,
		Disposition: &disposition,
	})

	return utils.Created(c, "Disposisi berhasil dibuat", disposition)
}

func (h *DispositionHandler) ListDispositions(c *fiber.Ctx) error {
	query := h.db.Model(&models.Disposition{}).
		Preload("Letter").
		Preload("CreatedBy")

	if letterID := c.QueryInt("letter_id", 0); letterID > 0 {
		query = query.Where("letter_id = ?", letterID)
	}

	var dispositions []models.Disposition
	if err := query.Order("created_at DESC").Find(&dispositions).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat daftar disposisi")
	}

	return utils.OK(c, "Daftar disposisi berhasil diambil", dispositions)
}

func (h *DispositionHandler) GetDispositionByID(c *fiber.Ctx) error {
	dispositionID, _ := c.ParamsInt("id")

	var disposition models.Disposition
	err := h.db.Preload("Letter").Preload("CreatedBy").
		First(&disposition, dispositionID).Error
	if err != nil {
		return utils.NotFound(c, "Disposisi tidak ditemukan")
	}

	return utils.OK(c, "Detail disposisi berhasil diambil", disposition)
}

func (h *DispositionHandler) UpdateDisposition(c *fiber.Ctx) error {
	dispositionID, _ := c.ParamsInt("id")

	var disposition models.Disposition
	if err := h.db.First(&disposition, dispositionID).Error; err != nil {
		return utils.NotFound(c, "Disposisi tidak ditemukan")
	}

	var req dispdto.UpdateDispositionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	dispdto.ApplyUpdate(&disposition, &req)

	// Isi disposisi berubah; lembar PDF lama tidak lagi mewakili.
	if disposition.FilePDF != "" {
		_ = storage.DeleteFile(disposition.FilePDF)
		disposition.FilePDF = ""
	}

	if err := h.db.Save(&disposition).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan perubahan disposisi")
	}

	return utils.OK(c, "Disposisi berhasil diperbarui", disposition)
}

func (h *DispositionHandler) DeleteDisposition(c *fiber.Ctx) error {
	dispositionID, _ := c.ParamsInt("id")

	var disposition models.Disposition
	if err := h.db.First(&disposition, dispositionID).Error; err != nil {
		return utils.NotFound(c, "Disposisi tidak ditemukan")
	}

	if err := h.db.Delete(&disposition).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus disposisi")
	}

	if disposition.FilePDF != "" {
		_ = storage.DeleteFile(disposition.FilePDF)
	}

	return utils.OK(c, "Disposisi berhasil dihapus", nil)
}

// SetDispositionNumber - Isi nomor disposisi. Route ini dijaga permission
// disposition.set_number.
func (h *DispositionHandler) SetDispositionNumber(c *fiber.Ctx) error {
	dispositionID, _ := c.ParamsInt("id")

	var disposition models.Disposition
	if err := h.db.First(&disposition, dispositionID).Error; err != nil {
		return utils.NotFound(c, "Disposisi tidak ditemukan")
	}

	var req dispdto.SetNumberRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	number := strings.TrimSpace(req.Number)

	// Nomor harus unik antar disposisi; pre-check untuk pesan yang jelas.
	var count int64
	h.db.Model(&models.Disposition{}).
		Where("number = ? AND id != ?", number, disposition.ID).
		Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Nomor disposisi sudah dipakai")
	}

	disposition.Number = number

	// Nomor tercetak di lembar PDF; hasil generate lama dibuang.
	if disposition.FilePDF != "" {
		_ = storage.DeleteFile(disposition.FilePDF)
		disposition.FilePDF = ""
	}

	if err := h.db.Save(&disposition).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan nomor disposisi")
	}

	return utils.OK(c, "Nomor disposisi berhasil disimpan", disposition)
}

// GetDispositionPDF - Generate lembar disposisi bila belum ada, lalu
// redirect ke URL file bertanda tangan.
func (h *DispositionHandler) GetDispositionPDF(c *fiber.Ctx) error {
	dispositionID, _ := c.ParamsInt("id")

	var disposition models.Disposition
	err := h.db.Preload("Letter").Preload("CreatedBy").
		First(&disposition, dispositionID).Error
	if err != nil {
		return utils.NotFound(c, "Disposisi tidak ditemukan")
	}

	if disposition.FilePDF == "" {
		letterNumber, letterTitle := "", ""
		if disposition.Letter != nil {
			letterNumber = disposition.Letter.LetterNumber
			letterTitle = disposition.Letter.Title
		}
		createdBy := ""
		if disposition.CreatedBy != nil {
			createdBy = disposition.CreatedBy.Name
		}

		sheet, err := pdf.DispositionSheet(pdf.SheetData{
			AppName:      h.settings.String("app.name"),
			Number:       disposition.Number,
			LetterNumber: letterNumber,
			LetterTitle:  letterTitle,
			Recipients:   disposition.Recipients,
			Instructions: disposition.Instructions,
			DueDate:      disposition.DueDate,
			CreatedBy:    createdBy,
			CreatedAt:    disposition.CreatedAt,
		})
		if err != nil {
			return utils.InternalServerError(c, "Gagal membuat lembar disposisi")
		}

		relPath, err := storage.SaveBytes(sheet, "dispositions", ".pdf")
		if err != nil {
			return utils.InternalServerError(c, "Gagal menyimpan lembar disposisi")
		}

		disposition.FilePDF = relPath
		if err := h.db.Save(&disposition).Error; err != nil {
			return utils.InternalServerError(c, "Gagal menyimpan lembar disposisi")
		}
	}

	signed := utils.SignFilePath(signingKey(), disposition.FilePDF, 15*time.Minute)
	return c.Redirect(signed, fiber.StatusFound)
}
