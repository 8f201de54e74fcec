package services

import (
	"errors"

	"github.com/synchromes/esurat-sub001/models"

	"gorm.io/gorm"
)

// LetterService memuat surat beserta relasi yang dibutuhkan handler.
type LetterService struct {
	db *gorm.DB
}

func NewLetterService(db *gorm.DB) *LetterService {
	return &LetterService{db: db}
}

func (s *LetterService) GetByID(id uint) (*models.Letter, error) {
	var letter models.Letter
	err := s.db.
		Preload("Category").
		Preload("ArchiveCode").
		Preload("CreatedBy").
		First(&letter, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &letter, nil
}
