package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/synchromes/esurat-sub001/config"

	"github.com/google/uuid"
)

var (
	ErrOutsideRoot = fmt.Errorf("path resolves outside upload root")
	ErrTooLarge    = fmt.Errorf("file exceeds maximum upload size")
	ErrBadType     = fmt.Errorf("file type not allowed")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".doc":  true,
	".docx": true,
}

// SaveUpload menyimpan file multipart ke {UPLOAD_DIR}/{subdir} dengan nama
// acak (uuid) dan mengembalikan path relatif terhadap UPLOAD_DIR.
// maxBytes <= 0 berarti tanpa batas ukuran.
func SaveUpload(fileHeader *multipart.FileHeader, subdir string, maxBytes int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", ErrBadType
	}

	if maxBytes > 0 && fileHeader.Size > maxBytes {
		return "", ErrTooLarge
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	cfg := config.LoadStorageConfig()
	destDir := filepath.Join(cfg.UploadDir, subdir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	relPath := filepath.Join(subdir, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(cfg.UploadDir, relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// SaveBytes menulis konten hasil generate (PDF stempel, lembar disposisi)
// ke bawah UPLOAD_DIR dan mengembalikan path relatifnya.
func SaveBytes(content []byte, subdir, ext string) (string, error) {
	cfg := config.LoadStorageConfig()

	destDir := filepath.Join(cfg.UploadDir, subdir)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	relPath := filepath.Join(subdir, uuid.NewString()+ext)
	if err := os.WriteFile(filepath.Join(cfg.UploadDir, relPath), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// ReadFile membaca file tersimpan lewat path relatif yang sudah divalidasi.
func ReadFile(relPath string) ([]byte, error) {
	abs, err := Resolve(relPath)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

// DeleteFile menghapus file tersimpan. Path di luar root ditolak.
func DeleteFile(relPath string) error {
	abs, err := Resolve(relPath)
	if err != nil {
		return err
	}
	return os.Remove(abs)
}

// Resolve mengubah path relatif menjadi absolut di bawah UPLOAD_DIR.
// Path yang keluar dari root (.. traversal, absolut) ditolak.
func Resolve(relPath string) (string, error) {
	cfg := config.LoadStorageConfig()

	root, err := filepath.Abs(cfg.UploadDir)
	if err != nil {
		return "", err
	}

	abs := filepath.Join(root, filepath.FromSlash(relPath))
	abs = filepath.Clean(abs)

	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}

	return abs, nil
}
