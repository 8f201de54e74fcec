package handlers

import (
	"fmt"

	"github.com/synchromes/esurat-sub001/dto/masters"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	db *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{db: db}
}

// CreateCategory - Nama dan kode harus unik; dicek manual sebelum insert
// supaya user dapat pesan konflik yang jelas, bukan error constraint.
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req masters.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	category := req.ToModel()

	var count int64
	h.db.Model(&models.LetterCategory{}).Where("code = ?", category.Code).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Kode kategori sudah dipakai")
	}

	h.db.Model(&models.LetterCategory{}).Where("name = ?", category.Name).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Nama kategori sudah dipakai")
	}

	if err := h.db.Create(&category).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan kategori")
	}

	return utils.Created(c, "Kategori berhasil dibuat", category)
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	var categories []models.LetterCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		return utils.InternalServerError(c, "Gagal memuat daftar kategori")
	}

	return utils.OK(c, "Daftar kategori berhasil diambil", categories)
}

func (h *CategoryHandler) GetCategoryByID(c *fiber.Ctx) error {
	categoryID, _ := c.ParamsInt("id")

	var category models.LetterCategory
	if err := h.db.First(&category, categoryID).Error; err != nil {
		return utils.NotFound(c, "Kategori tidak ditemukan")
	}

	return utils.OK(c, "Detail kategori berhasil diambil", category)
}

func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, _ := c.ParamsInt("id")

	var category models.LetterCategory
	if err := h.db.First(&category, categoryID).Error; err != nil {
		return utils.NotFound(c, "Kategori tidak ditemukan")
	}

	var req masters.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	updated := req.ToModel()

	var count int64
	h.db.Model(&models.LetterCategory{}).
		Where("code = ? AND id != ?", updated.Code, category.ID).
		Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Kode kategori sudah dipakai")
	}

	h.db.Model(&models.LetterCategory{}).
		Where("name = ? AND id != ?", updated.Name, category.ID).
		Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Nama kategori sudah dipakai")
	}

	category.Name = updated.Name
	category.Code = updated.Code
	category.Color = updated.Color

	if err := h.db.Save(&category).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan perubahan kategori")
	}

	return utils.OK(c, "Kategori berhasil diperbarui", category)
}

// DeleteCategory - Ditolak selama masih ada surat yang memakai kategori;
// jumlah surat yang menghalangi dilaporkan ke user.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, _ := c.ParamsInt("id")

	var category models.LetterCategory
	if err := h.db.First(&category, categoryID).Error; err != nil {
		return utils.NotFound(c, "Kategori tidak ditemukan")
	}

	var letterCount int64
	h.db.Model(&models.Letter{}).Where("category_id = ?", category.ID).Count(&letterCount)
	if letterCount > 0 {
		return utils.Conflict(c, fmt.Sprintf("Kategori tidak bisa dihapus, masih dipakai %d surat", letterCount))
	}

	if err := h.db.Delete(&category).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus kategori")
	}

	return utils.OK(c, "Kategori berhasil dihapus", nil)
}
