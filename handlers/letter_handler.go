package handlers

import (
	"errors"
	"log"
	"time"

	letterdto "github.com/synchromes/esurat-sub001/dto/letters"
	"github.com/synchromes/esurat-sub001/middleware"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"
	"github.com/synchromes/esurat-sub001/utils/events"
	"github.com/synchromes/esurat-sub001/utils/pdf"
	"github.com/synchromes/esurat-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LetterHandler struct {
	db       *gorm.DB
	letters  *services.LetterService
	settings *services.SettingsService
}

func NewLetterHandler(db *gorm.DB) *LetterHandler {
	return &LetterHandler{
		db:       db,
		letters:  services.NewLetterService(db),
		settings: services.NewSettingsService(db),
	}
}

// CreateLetter - Buat draft surat baru. File draft opsional pada tahap ini;
// wajib baru saat pengajuan.
func (h *LetterHandler) CreateLetter(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req letterdto.CreateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	// Kategori harus ada; pre-check supaya pesannya jelas, bukan error FK.
	var category models.LetterCategory
	if err := h.db.First(&category, req.CategoryID).Error; err != nil {
		return utils.BadRequest(c, "Kategori surat tidak ditemukan", nil)
	}

	letter := req.ToModel()
	letter.CreatedByID = claims.UserID
	letter.VerificationCode = uuid.NewString()

	if fileHeader, err := c.FormFile("file"); err == nil {
		relPath, err := storage.SaveUpload(fileHeader, "letters", h.settings.MaxUploadBytes())
		if err != nil {
			return h.uploadError(c, err)
		}
		letter.FileDraft = relPath
	}

	if err := h.db.Create(&letter).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan data surat")
	}

	return utils.Created(c, "Draft surat berhasil dibuat", letter)
}

// ListLetters - Daftar surat dengan filter status/kategori dan paging.
func (h *LetterHandler) ListLetters(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := h.db.Model(&models.Letter{}).
		Preload("Category").
		Preload("CreatedBy")

	if status := c.Query("status"); status != "" {
		if !models.LetterStatus(status).IsValid() {
			return utils.BadRequest(c, "Status tidak dikenal", nil)
		}
		query = query.Where("status = ?", status)
	}
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("title LIKE ? OR letter_number LIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	query.Count(&total)

	var letters []models.Letter
	if err := query.Order("updated_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&letters).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat daftar surat")
	}

	return utils.OK(c, "Daftar surat berhasil diambil", fiber.Map{
		"items": letters,
		"page":  page,
		"limit": limit,
		"total": total,
	})
}

func (h *LetterHandler) GetLetterByID(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if err := h.db.Preload("CreatedBy").
		Where("letter_id = ?", letter.ID).
		Order("created_at DESC").
		Find(&letter.Dispositions).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat disposisi surat")
	}

	return utils.OK(c, "Detail surat berhasil diambil", letter)
}

// UpdateLetter - Edit surat; hanya draft atau surat yang ditolak.
func (h *LetterHandler) UpdateLetter(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if !letter.IsEditable() {
		return utils.Conflict(c, "Hanya surat berstatus draft atau ditolak yang bisa diedit")
	}

	var req letterdto.UpdateLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	if req.CategoryID != nil {
		var category models.LetterCategory
		if err := h.db.First(&category, *req.CategoryID).Error; err != nil {
			return utils.BadRequest(c, "Kategori surat tidak ditemukan", nil)
		}
	}

	letterdto.ApplyUpdate(letter, &req)

	// File draft baru opsional; file lama dihapus setelah diganti.
	if fileHeader, err := c.FormFile("file"); err == nil {
		relPath, err := storage.SaveUpload(fileHeader, "letters", h.settings.MaxUploadBytes())
		if err != nil {
			return h.uploadError(c, err)
		}
		if letter.FileDraft != "" {
			if err := storage.DeleteFile(letter.FileDraft); err != nil {
				log.Printf("failed to remove old draft file %s: %v", letter.FileDraft, err)
			}
		}
		letter.FileDraft = relPath
	}

	// Edit setelah penolakan mengembalikan surat ke draft.
	if letter.Status == models.StatusRejected {
		letter.Status = models.StatusDraft
	}

	if err := h.db.Save(letter).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan perubahan surat")
	}

	return utils.OK(c, "Surat berhasil diperbarui", letter)
}

func (h *LetterHandler) DeleteLetter(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if letter.Status != models.StatusDraft {
		return utils.Conflict(c, "Hanya surat berstatus draft yang bisa dihapus")
	}

	var dispositionCount int64
	h.db.Model(&models.Disposition{}).Where("letter_id = ?", letter.ID).Count(&dispositionCount)
	if dispositionCount > 0 {
		return utils.Conflict(c, "Surat tidak bisa dihapus karena masih memiliki disposisi")
	}

	if err := h.db.Delete(&models.Letter{}, letter.ID).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus surat")
	}

	if letter.FileDraft != "" {
		if err := storage.DeleteFile(letter.FileDraft); err != nil {
			log.Printf("failed to remove draft file %s: %v", letter.FileDraft, err)
		}
	}

	return utils.OK(c, "Surat berhasil dihapus", nil)
}

// SubmitLetter - Ajukan draft untuk persetujuan. Nomor surat di-generate
// di sini, dalam transaksi dengan FOR UPDATE.
func (h *LetterHandler) SubmitLetter(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if letter.Status != models.StatusDraft {
		return utils.Conflict(c, "Hanya surat berstatus draft yang bisa diajukan")
	}

	if letter.FileDraft == "" {
		return utils.UnprocessableEntity(c, "File surat wajib diunggah sebelum pengajuan", nil)
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if letter.SequenceNumber == 0 {
			seq, number, err := utils.NextLetterNumber(tx, letter.CategoryID, letter.Category.Code, time.Now())
			if err != nil {
				return err
			}
			letter.SequenceNumber = seq
			letter.LetterNumber = number
		}

		letter.Status = models.StatusPendingApproval
		return tx.Save(letter).Error
	})
	if err != nil {
		return utils.InternalServerError(c, "Gagal mengajukan surat")
	}

	events.Publish(events.LetterEvent{
		Type:   events.LetterSubmitted,
		Letter: *letter,
	})

	return utils.OK(c, "Surat berhasil diajukan untuk persetujuan", letter)
}

// ApproveLetter - Setujui surat: stempel QR verifikasi ke file draft,
// simpan hasilnya sebagai file final.
func (h *LetterHandler) ApproveLetter(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if letter.Status != models.StatusPendingApproval {
		return utils.Conflict(c, "Hanya surat menunggu persetujuan yang bisa disetujui")
	}

	draft, err := storage.ReadFile(letter.FileDraft)
	if err != nil {
		return utils.InternalServerError(c, "File draft surat tidak dapat dibaca")
	}

	size := letter.StampSize
	if size <= 0 {
		size = float64(h.settings.Int("qr.default_size"))
	}

	result, err := pdf.Stamp(draft, h.settings.VerifyURL(letter.VerificationCode), []pdf.StampDescriptor{
		{
			Page:     letter.StampPage,
			XPercent: letter.StampXPercent,
			YPercent: letter.StampYPercent,
			Size:     size,
			Type:     pdf.StampQR,
		},
	})
	if err != nil {
		return utils.InternalServerError(c, "Gagal menstempel dokumen surat")
	}
	if len(result.SkippedPages) > 0 {
		log.Printf("letter %d: stamp pages out of range, skipped: %v", letter.ID, result.SkippedPages)
	}

	finalPath, err := storage.SaveBytes(result.PDF, "letters", ".pdf")
	if err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan file surat final")
	}

	letter.FileFinal = finalPath
	letter.Status = models.StatusApproved
	letter.ApprovedByID = &claims.UserID

	if err := h.db.Save(letter).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan persetujuan surat")
	}

	events.Publish(events.LetterEvent{
		Type:   events.LetterApproved,
		Letter: *letter,
	})

	return utils.OK(c, "Surat berhasil disetujui dan distempel", letter)
}

func (h *LetterHandler) RejectLetter(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if letter.Status != models.StatusPendingApproval {
		return utils.Conflict(c, "Hanya surat menunggu persetujuan yang bisa ditolak")
	}

	// Catatan penolakan opsional; body kosong dibiarkan lewat.
	var req letterdto.RejectLetterRequest
	_ = c.BodyParser(&req)

	letter.Status = models.StatusRejected
	if req.Note != "" {
		letter.Notes = req.Note
	}

	if err := h.db.Save(letter).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan penolakan surat")
	}

	events.Publish(events.LetterEvent{
		Type:   events.LetterRejected,
		Letter: *letter,
		Note:   req.Note,
	})

	return utils.OK(c, "Surat ditolak dan dikembalikan ke pembuat", letter)
}

// ArchiveLetter - Arsipkan surat yang sudah disetujui dengan kode arsip.
func (h *LetterHandler) ArchiveLetter(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	if letter.Status != models.StatusApproved {
		return utils.Conflict(c, "Hanya surat yang sudah disetujui yang bisa diarsipkan")
	}

	var req letterdto.ArchiveLetterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	var code models.ArchiveCode
	if err := h.db.First(&code, req.ArchiveCodeID).Error; err != nil {
		return utils.BadRequest(c, "Kode arsip tidak ditemukan", nil)
	}

	letter.ArchiveCodeID = &code.ID
	letter.Status = models.StatusArchived

	if err := h.db.Save(letter).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengarsipkan surat")
	}

	return utils.OK(c, "Surat berhasil diarsipkan", letter)
}

// VerifyLetter - Route publik di balik QR stempel. Hanya metadata
// yang aman untuk publik yang dikembalikan.
func (h *LetterHandler) VerifyLetter(c *fiber.Ctx) error {
	code := c.Params("code")

	var letter models.Letter
	err := h.db.Preload("Category").
		Where("verification_code = ?", code).
		Where("status IN ?", []models.LetterStatus{models.StatusApproved, models.StatusArchived}).
		First(&letter).Error
	if err != nil {
		return utils.NotFound(c, "Dokumen tidak ditemukan atau belum disahkan")
	}

	categoryName := ""
	if letter.Category != nil {
		categoryName = letter.Category.Name
	}

	return utils.OK(c, "Dokumen terverifikasi", fiber.Map{
		"title":         letter.Title,
		"letter_number": letter.LetterNumber,
		"category":      categoryName,
		"status":        letter.Status,
		"approved_at":   letter.UpdatedAt,
	})
}

// GetLetterBundle - Gabungkan lembar disposisi terakhir dengan file surat
// dan kembalikan sebagai attachment PDF.
func (h *LetterHandler) GetLetterBundle(c *fiber.Ctx) error {
	letterID, _ := c.ParamsInt("id")

	letter, err := h.letters.GetByID(uint(letterID))
	if err != nil {
		return utils.NotFound(c, "Surat tidak ditemukan")
	}

	var disposition models.Disposition
	if err := h.db.Where("letter_id = ?", letter.ID).
		Order("created_at DESC").
		First(&disposition).Error; err != nil {
		return utils.NotFound(c, "Surat belum memiliki disposisi")
	}

	if disposition.FilePDF == "" {
		return utils.Conflict(c, "Lembar disposisi belum di-generate")
	}

	letterFile := letter.FileFinal
	if letterFile == "" {
		letterFile = letter.FileDraft
	}
	if letterFile == "" {
		return utils.Conflict(c, "Surat belum memiliki file")
	}

	front, err := storage.ReadFile(disposition.FilePDF)
	if err != nil {
		return utils.InternalServerError(c, "File disposisi tidak dapat dibaca")
	}
	back, err := storage.ReadFile(letterFile)
	if err != nil {
		return utils.InternalServerError(c, "File surat tidak dapat dibaca")
	}

	merged := pdf.Merge(front, back)
	if merged == nil {
		return utils.InternalServerError(c, "Gagal menggabungkan dokumen")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="surat-bundle.pdf"`)
	return c.Send(merged)
}

func (h *LetterHandler) uploadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, storage.ErrBadType):
		return utils.BadRequest(c, "Format file harus PDF, gambar, atau dokumen Word", nil)
	case errors.Is(err, storage.ErrTooLarge):
		return utils.BadRequest(c, "Ukuran file melebihi batas maksimum", nil)
	default:
		return utils.InternalServerError(c, "Gagal menyimpan file ke server")
	}
}
