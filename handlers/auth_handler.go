package handlers

import (
	"strings"

	"github.com/synchromes/esurat-sub001/dto"
	"github.com/synchromes/esurat-sub001/middleware"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db          *gorm.DB
	permService *services.PermissionService
}

func NewAuthHandler(db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		db:          db,
		permService: services.NewPermissionService(db),
	}
}

// Login - Verifikasi kredensial lalu terbitkan access + refresh token.
// Seluruh permission user di-snapshot ke klaim access token di sini;
// perubahan role baru berlaku pada login berikutnya.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	var user models.User
	err := h.db.Preload("Roles").
		Where("email = ?", strings.TrimSpace(req.Email)).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return utils.Unauthorized(c, "Email atau password salah")
		}
		return utils.InternalServerError(c, "Gagal memuat data user")
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return utils.Unauthorized(c, "Email atau password salah")
	}

	if !user.IsActive {
		return utils.Forbidden(c, "Akun Anda dinonaktifkan, hubungi administrator")
	}

	permissions, err := h.permService.PermissionsForUser(user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memuat permission user")
	}

	accessToken, claims, err := utils.GenerateAccessToken(user, permissions)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	refreshToken, _, err := utils.GenerateRefreshToken(user)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat refresh token")
	}

	return utils.OK(c, "Login berhasil", dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    claims.ExpiresAt.Time,
		User:         toUserSummary(user, permissions),
	})
}

// RefreshToken - Tukar refresh token dengan access token baru.
// Snapshot permission dibuat ulang dari database di sini.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	claims, err := utils.VerifyRefreshToken(req.RefreshToken)
	if err != nil {
		return utils.Unauthorized(c, "Refresh token tidak valid atau kedaluwarsa")
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		return utils.Unauthorized(c, "User tidak ditemukan")
	}

	if !user.IsActive {
		return utils.Forbidden(c, "Akun Anda dinonaktifkan, hubungi administrator")
	}

	permissions, err := h.permService.PermissionsForUser(user.ID)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memuat permission user")
	}

	accessToken, newClaims, err := utils.GenerateAccessToken(user, permissions)
	if err != nil {
		return utils.InternalServerError(c, "Gagal membuat token")
	}

	return utils.OK(c, "Token diperbarui", dto.RefreshTokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   newClaims.ExpiresAt.Time,
	})
}

func (h *AuthHandler) GetMyProfile(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := h.db.Preload("Roles").First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User tidak ditemukan")
	}

	return utils.OK(c, "Profil berhasil diambil", toUserSummary(user, claims.Permissions))
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := middleware.GetJWTClaims(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if errMap := req.Validate(); len(errMap) > 0 {
		return utils.BadRequest(c, "Validasi gagal", errMap)
	}

	var user models.User
	if err := h.db.First(&user, claims.UserID).Error; err != nil {
		return utils.NotFound(c, "User tidak ditemukan")
	}

	if !utils.CheckPassword(user.PasswordHash, req.OldPassword) {
		return utils.BadRequest(c, "Password lama salah", nil)
	}

	newHash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return utils.InternalServerError(c, "Gagal memproses password")
	}

	user.PasswordHash = newHash
	if err := h.db.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Gagal menyimpan password baru")
	}

	return utils.OK(c, "Password berhasil diperbarui", nil)
}

func toUserSummary(user models.User, permissions []string) dto.UserSummary {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, r.Name)
	}

	return dto.UserSummary{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		IsActive:    user.IsActive,
		Roles:       roles,
		Permissions: permissions,
	}
}
