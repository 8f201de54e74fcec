package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultsWhenTableEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	assert.Equal(t, "e-Surat", svc.String("app.name"))
	assert.Equal(t, 80, svc.Int("qr.default_size"))
	assert.True(t, svc.Bool("notify.enabled"))
	assert.Equal(t, int64(10*1024*1024), svc.MaxUploadBytes())
}

func TestSettingsSetAndReadBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	require.NoError(t, svc.Set("app.name", "Arsip Dinas"))
	require.NoError(t, svc.Set("qr.default_size", "120"))
	require.NoError(t, svc.Set("notify.enabled", "false"))

	assert.Equal(t, "Arsip Dinas", svc.String("app.name"))
	assert.Equal(t, 120, svc.Int("qr.default_size"))
	assert.False(t, svc.Bool("notify.enabled"))
}

func TestSettingsSetRejectsUnknownKey(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	err := svc.Set("smtp.host", "mail.example.com")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestSettingsSetValidatesType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	assert.Error(t, svc.Set("qr.default_size", "besar"))
	assert.Error(t, svc.Set("notify.enabled", "kadang"))

	// Nilai lama tidak berubah setelah penolakan.
	assert.Equal(t, 80, svc.Int("qr.default_size"))
}

func TestSettingsIntFallsBackOnGarbageRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	// Baris rusak ditulis langsung, melewati validasi Set.
	require.NoError(t, db.Exec("INSERT INTO settings (`key`, value, type, updated_at) VALUES ('qr.default_size', 'x', 'int', CURRENT_TIMESTAMP)").Error)

	assert.Equal(t, 80, svc.Int("qr.default_size"))
}

func TestSettingsAllMergesRowsWithDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	require.NoError(t, svc.Set("wa.recipient", "628123456789"))

	all, err := svc.All()
	require.NoError(t, err)
	require.Len(t, all, len(SettingDefs()))

	values := make(map[string]string, len(all))
	for _, s := range all {
		values[s.Key] = s.Value
	}
	assert.Equal(t, "628123456789", values["wa.recipient"])
	assert.Equal(t, "e-Surat", values["app.name"])
}

func TestVerifyURLTrimsTrailingSlash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	require.NoError(t, svc.Set("app.base_url", "https://surat.example.id/"))

	assert.Equal(t, "https://surat.example.id/verify/abc123", svc.VerifyURL("abc123"))
}
