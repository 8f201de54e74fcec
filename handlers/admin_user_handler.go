package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/synchromes/esurat-sub001/dto/users"
	"github.com/synchromes/esurat-sub001/middleware"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req users.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", errs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Email sudah terdaftar")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memproses password")
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if len(req.RoleIDs) > 0 {
		var roles []models.Role
		if err := h.db.Find(&roles, req.RoleIDs).Error; err != nil || len(roles) != len(req.RoleIDs) {
			return utils.BadRequest(c, "Ada role yang tidak ditemukan", nil)
		}
		user.Roles = roles
	}

	if err := h.db.Create(&user).Error; err != nil {
		return utils.InternalServerError(c, "Gagal membuat user")
	}

	return utils.Created(c, "User berhasil dibuat", user)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	query := h.db.Model(&models.User{}).Preload("Roles")

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if active := c.Query("is_active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var items []models.User
	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar user")
	}

	return utils.OK(c, "Daftar user berhasil diambil", items)
}

func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "ID tidak valid", nil)
	}

	var user models.User
	if err := h.db.Preload("Roles.Permissions").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal mengambil user")
	}

	return utils.OK(c, "User berhasil diambil", user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "ID tidak valid", nil)
	}

	var req users.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", errs)
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal mengambil user")
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		var count int64
		h.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, user.ID).Count(&count)
		if count > 0 {
			return utils.Conflict(c, "Email sudah terdaftar")
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return utils.InternalServerError(c, "Gagal memproses password")
		}
		user.PasswordHash = hashed
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.db.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan user")
	}

	// Penggantian role memakai Replace supaya keanggotaan lama ikut
	// terhapus. Token lama tetap membawa snapshot permission sampai
	// kedaluwarsa.
	if req.RoleIDs != nil {
		var roles []models.Role
		if len(*req.RoleIDs) > 0 {
			if err := h.db.Find(&roles, *req.RoleIDs).Error; err != nil || len(roles) != len(*req.RoleIDs) {
				return utils.BadRequest(c, "Ada role yang tidak ditemukan", nil)
			}
		}
		if err := h.db.Model(&user).Association("Roles").Replace(roles); err != nil {
			return utils.InternalServerError(c, "Gagal memperbarui role user")
		}
	}

	h.db.Preload("Roles").First(&user, user.ID)

	return utils.OK(c, "User berhasil diperbarui", user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "ID tidak valid", nil)
	}

	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Sesi tidak valid")
	}
	if claims.UserID == uint(id) {
		return utils.BadRequest(c, "Tidak dapat menghapus akun sendiri", nil)
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal mengambil user")
	}

	var letterCount int64
	h.db.Model(&models.Letter{}).Where("created_by_id = ?", user.ID).Count(&letterCount)
	if letterCount > 0 {
		return utils.Conflict(c, fmt.Sprintf("User masih memiliki %d surat, nonaktifkan saja", letterCount))
	}

	if err := h.db.Select("Roles").Delete(&user).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus user")
	}

	return utils.OK(c, "User berhasil dihapus", nil)
}
