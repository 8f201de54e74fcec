package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/synchromes/esurat-sub001/middleware"
	"github.com/synchromes/esurat-sub001/models"
	"github.com/synchromes/esurat-sub001/utils"
	"github.com/synchromes/esurat-sub001/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/phpdave11/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newLetterApp merakit app dengan route surat dan klaim yang langsung
// ditanam di context, sehingga alur handler bisa diuji tanpa token.
func newLetterApp(t *testing.T) (*fiber.App, *gorm.DB, models.User) {
	t.Helper()

	db := setupHandlerDB(t)

	user := models.User{Name: "Sekretaris", Email: "sekretaris@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	h := NewLetterHandler(db)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(middleware.ContextClaimsKey, &utils.JWTClaims{UserID: user.ID})
		return c.Next()
	})
	app.Post("/api/letters", h.CreateLetter)
	app.Put("/api/letters/:id", h.UpdateLetter)
	app.Post("/api/letters/:id/submit", h.SubmitLetter)
	app.Post("/api/letters/:id/approve", h.ApproveLetter)
	app.Post("/api/letters/:id/reject", h.RejectLetter)
	app.Post("/api/letters/:id/archive", h.ArchiveLetter)

	return app, db, user
}

func seedLetterCategory(t *testing.T, db *gorm.DB) models.LetterCategory {
	t.Helper()

	category := models.LetterCategory{Name: "Undangan", Code: "UND"}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func seedLetter(t *testing.T, db *gorm.DB, categoryID, userID uint, status models.LetterStatus) *models.Letter {
	t.Helper()

	letter := models.Letter{
		Title:            "Undangan Rapat Koordinasi",
		CategoryID:       categoryID,
		Status:           status,
		CreatedByID:      userID,
		VerificationCode: "kode-uji-" + string(status),
		StampPage:        1,
		StampXPercent:    0.5,
		StampYPercent:    0.5,
	}
	require.NoError(t, db.Create(&letter).Error)
	return &letter
}

func makeDraftPDF(t *testing.T, pages int) []byte {
	t.Helper()

	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for i := 1; i <= pages; i++ {
		doc.AddPage()
		doc.CellFormat(0, 20, fmt.Sprintf("halaman %d", i), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.Bytes()
}

func TestCreateLetterStartsAsDraft(t *testing.T) {
	app, db, _ := newLetterApp(t)
	category := seedLetterCategory(t, db)

	payload := fiber.Map{"title": "Undangan Rapat", "category_id": category.ID}
	resp := doJSON(t, app, http.MethodPost, "/api/letters", payload)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var letter models.Letter
	require.NoError(t, db.First(&letter).Error)
	assert.Equal(t, models.StatusDraft, letter.Status)
	assert.NotEmpty(t, letter.VerificationCode)
	assert.Zero(t, letter.SequenceNumber)
}

func TestCreateLetterUnknownCategory(t *testing.T) {
	app, _, _ := newLetterApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/letters", fiber.Map{"title": "X", "category_id": 99})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmitLetterRequiresDraftFile(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)
	letter := seedLetter(t, db, category.ID, user.ID, models.StatusDraft)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/submit", letter.ID), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSubmitLetterAssignsNumberOnce(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)

	letter := seedLetter(t, db, category.ID, user.ID, models.StatusDraft)
	letter.FileDraft = "letters/draft.pdf"
	require.NoError(t, db.Save(letter).Error)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/submit", letter.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Letter
	require.NoError(t, db.First(&got, letter.ID).Error)
	assert.Equal(t, models.StatusPendingApproval, got.Status)
	assert.Equal(t, 1, got.SequenceNumber)
	assert.True(t, strings.HasPrefix(got.LetterNumber, "001/UND/"), "unexpected number %q", got.LetterNumber)

	// Surat kedua di kategori yang sama melanjutkan urutan.
	second := seedLetter(t, db, category.ID, user.ID, models.StatusDraft)
	second.FileDraft = "letters/draft2.pdf"
	second.VerificationCode = "kode-uji-2"
	require.NoError(t, db.Save(second).Error)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/submit", second.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Pakai struct tujuan baru: primary key yang sudah terisi di `got`
	// ikut menjadi kondisi query oleh GORM.
	var gotSecond models.Letter
	require.NoError(t, db.First(&gotSecond, second.ID).Error)
	assert.Equal(t, 2, gotSecond.SequenceNumber)
}

func TestSubmitLetterOnlyFromDraft(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)
	letter := seedLetter(t, db, category.ID, user.ID, models.StatusApproved)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/submit", letter.ID), nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRejectLetterStoresNote(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)
	letter := seedLetter(t, db, category.ID, user.ID, models.StatusPendingApproval)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/reject", letter.ID),
		fiber.Map{"note": "Perbaiki perihal surat"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Letter
	require.NoError(t, db.First(&got, letter.ID).Error)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Equal(t, "Perbaiki perihal surat", got.Notes)
}

func TestRejectLetterOnlyWhilePending(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)
	letter := seedLetter(t, db, category.ID, user.ID, models.StatusDraft)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/reject", letter.ID), nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateRejectedLetterKeepsSequence(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)

	letter := seedLetter(t, db, category.ID, user.ID, models.StatusRejected)
	letter.SequenceNumber = 4
	letter.LetterNumber = "004/UND/VIII/2026"
	letter.FileDraft = "letters/draft.pdf"
	require.NoError(t, db.Save(letter).Error)

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/letters/%d", letter.ID),
		fiber.Map{"title": "Undangan Rapat (revisi)"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Letter
	require.NoError(t, db.First(&got, letter.ID).Error)
	assert.Equal(t, models.StatusDraft, got.Status)
	assert.Equal(t, 4, got.SequenceNumber)

	// Pengajuan ulang memakai nomor yang sudah dimiliki, bukan nomor baru.
	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/submit", letter.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&got, letter.ID).Error)
	assert.Equal(t, models.StatusPendingApproval, got.Status)
	assert.Equal(t, 4, got.SequenceNumber)
	assert.Equal(t, "004/UND/VIII/2026", got.LetterNumber)
}

func TestUpdateLetterBlockedAfterApproval(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)
	letter := seedLetter(t, db, category.ID, user.ID, models.StatusApproved)

	resp := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/letters/%d", letter.ID),
		fiber.Map{"title": "Coba ubah"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestApproveLetterStampsAndStoresFinal(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)

	draftPath, err := storage.SaveBytes(makeDraftPDF(t, 2), "letters", ".pdf")
	require.NoError(t, err)

	letter := seedLetter(t, db, category.ID, user.ID, models.StatusPendingApproval)
	letter.FileDraft = draftPath
	require.NoError(t, db.Save(letter).Error)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/approve", letter.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Letter
	require.NoError(t, db.First(&got, letter.ID).Error)
	assert.Equal(t, models.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedByID)
	assert.Equal(t, user.ID, *got.ApprovedByID)
	require.NotEmpty(t, got.FileFinal)
	assert.NotEqual(t, got.FileDraft, got.FileFinal)

	final, err := storage.ReadFile(got.FileFinal)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(final, []byte("%PDF")))
}

func TestApproveLetterOnlyWhilePending(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)
	letter := seedLetter(t, db, category.ID, user.ID, models.StatusDraft)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/approve", letter.ID), nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestArchiveLetterNeedsApprovedStatusAndCode(t *testing.T) {
	app, db, user := newLetterApp(t)
	category := seedLetterCategory(t, db)

	archiveCode := models.ArchiveCode{Code: "005", Name: "Kesekretariatan"}
	require.NoError(t, db.Create(&archiveCode).Error)

	pending := seedLetter(t, db, category.ID, user.ID, models.StatusPendingApproval)
	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/archive", pending.ID),
		fiber.Map{"archive_code_id": archiveCode.ID})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	approved := seedLetter(t, db, category.ID, user.ID, models.StatusApproved)
	approved.VerificationCode = "kode-uji-arsip"
	require.NoError(t, db.Save(approved).Error)

	resp = doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/letters/%d/archive", approved.ID),
		fiber.Map{"archive_code_id": archiveCode.ID})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.Letter
	require.NoError(t, db.First(&got, approved.ID).Error)
	assert.Equal(t, models.StatusArchived, got.Status)
	require.NotNil(t, got.ArchiveCodeID)
	assert.Equal(t, archiveCode.ID, *got.ArchiveCodeID)
}
