package handlers

import (
	"errors"

	"github.com/synchromes/esurat-sub001/dto/masters"
	"github.com/synchromes/esurat-sub001/services"
	"github.com/synchromes/esurat-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingsHandler struct {
	settings *services.SettingsService
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{settings: services.NewSettingsService(db)}
}

// ListSettings - Seluruh kunci terdaftar dengan nilai efektifnya.
func (h *SettingsHandler) ListSettings(c *fiber.Ctx) error {
	settings, err := h.settings.All()
	if err != nil {
		return utils.InternalServerError(c, "Gagal memuat pengaturan")
	}

	return utils.OK(c, "Pengaturan berhasil diambil", settings)
}

// UpdateSetting - Kunci di luar registry ditolak, nilai divalidasi
// terhadap tipe kuncinya.
func (h *SettingsHandler) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var req masters.SettingUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Format data tidak valid", err.Error())
	}

	if err := h.settings.Set(key, req.Value); err != nil {
		if errors.Is(err, services.ErrUnknownSetting) {
			return utils.BadRequest(c, "Kunci pengaturan tidak dikenal", nil)
		}
		return utils.BadRequest(c, "Nilai pengaturan tidak valid", err.Error())
	}

	return utils.OK(c, "Pengaturan berhasil disimpan", fiber.Map{
		"key":   key,
		"value": h.settings.String(key),
	})
}
