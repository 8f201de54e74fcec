package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/synchromes/esurat-sub001/dto/users"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RoleHandler struct {
	db *gorm.DB
}

func NewRoleHandler(db *gorm.DB) *RoleHandler {
	return &RoleHandler{db: db}
}

func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var req users.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", errs)
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Role{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Nama role sudah digunakan")
	}

	role := models.Role{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}

	if len(req.PermissionIDs) > 0 {
		var perms []models.Permission
		if err := h.db.Find(&perms, req.PermissionIDs).Error; err != nil || len(perms) != len(req.PermissionIDs) {
			return utils.BadRequest(c, "Ada permission yang tidak ditemukan", nil)
		}
		role.Permissions = perms
	}

	if err := h.db.Create(&role).Error; err != nil {
		return utils.InternalServerError(c, "Gagal membuat role")
	}

	return utils.Created(c, "Role berhasil dibuat", role)
}

func (h *RoleHandler) ListRoles(c *fiber.Ctx) error {
	var roles []models.Role
	if err := h.db.Preload("Permissions").Order("name ASC").Find(&roles).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar role")
	}

	return utils.OK(c, "Daftar role berhasil diambil", roles)
}

func (h *RoleHandler) GetRoleByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "ID tidak valid", nil)
	}

	var role models.Role
	if err := h.db.Preload("Permissions").First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Role tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal mengambil role")
	}

	return utils.OK(c, "Role berhasil diambil", role)
}

func (h *RoleHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "ID tidak valid", nil)
	}

	var req users.RoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errs := req.Validate(); len(errs) > 0 {
		return utils.UnprocessableEntity(c, "Validasi gagal", errs)
	}

	var role models.Role
	if err := h.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Role tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal mengambil role")
	}

	name := strings.TrimSpace(req.Name)

	var count int64
	h.db.Model(&models.Role{}).Where("name = ? AND id <> ?", name, role.ID).Count(&count)
	if count > 0 {
		return utils.Conflict(c, "Nama role sudah digunakan")
	}

	role.Name = name
	role.Description = strings.TrimSpace(req.Description)

	if err := h.db.Save(&role).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan role")
	}

	var perms []models.Permission
	if len(req.PermissionIDs) > 0 {
		if err := h.db.Find(&perms, req.PermissionIDs).Error; err != nil || len(perms) != len(req.PermissionIDs) {
			return utils.BadRequest(c, "Ada permission yang tidak ditemukan", nil)
		}
	}
	if err := h.db.Model(&role).Association("Permissions").Replace(perms); err != nil {
		return utils.InternalServerError(c, "Gagal memperbarui permission role")
	}

	h.db.Preload("Permissions").First(&role, role.ID)

	return utils.OK(c, "Role berhasil diperbarui", role)
}

func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.BadRequest(c, "ID tidak valid", nil)
	}

	var role models.Role
	if err := h.db.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Role tidak ditemukan")
		}
		return utils.InternalServerError(c, "Gagal mengambil role")
	}

	var memberCount int64
	h.db.Model(&models.UserRole{}).Where("role_id = ?", role.ID).Count(&memberCount)
	if memberCount > 0 {
		return utils.Conflict(c, fmt.Sprintf("Role masih dipakai %d user", memberCount))
	}

	if err := h.db.Select("Permissions").Delete(&role).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menghapus role")
	}

	return utils.OK(c, "Role berhasil dihapus", nil)
}

// ListPermissions - Katalog permission statis, dikelompokkan per modul
// oleh klien. Katalog diisi saat migrasi, tidak ada endpoint tulis.
func (h *RoleHandler) ListPermissions(c *fiber.Ctx) error {
	var perms []models.Permission
	if err := h.db.Order("module ASC, name ASC").Find(&perms).Error; err != nil {
		return utils.InternalServerError(c, "Gagal mengambil daftar permission")
	}

	return utils.OK(c, "Daftar permission berhasil diambil", perms)
}
