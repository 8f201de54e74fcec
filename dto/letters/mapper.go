package letters

import (
	"strings"

	"github.com/synchromes/esurat-sub001/models"
)

func (r *CreateLetterRequest) ToModel() models.Letter {
	letter := models.Letter{
		Title:         strings.TrimSpace(r.Title),
		CategoryID:    r.CategoryID,
		Notes:         strings.TrimSpace(r.Notes),
		LetterDate:    r.LetterDate,
		Status:        models.StatusDraft,
		StampPage:     r.StampPage,
		StampXPercent: r.StampXPercent,
		StampYPercent: r.StampYPercent,
		StampSize:     r.StampSize,
	}

	if letter.StampPage == 0 {
		letter.StampPage = 1
	}

	return letter
}

func ApplyUpdate(letter *models.Letter, req *UpdateLetterRequest) {
	if letter == nil || req == nil {
		return
	}

	if req.Title != nil {
		letter.Title = strings.TrimSpace(*req.Title)
	}
	if req.CategoryID != nil {
		letter.CategoryID = *req.CategoryID
	}
	if req.Notes != nil {
		letter.Notes = strings.TrimSpace(*req.Notes)
	}
	if req.LetterDate != nil {
		letter.LetterDate = req.LetterDate
	}
	if req.StampPage != nil {
		letter.StampPage = *req.StampPage
	}
	if req.StampXPercent != nil {
		letter.StampXPercent = *req.StampXPercent
	}
	if req.StampYPercent != nil {
		letter.StampYPercent = *req.StampYPercent
	}
	if req.StampSize != nil {
		letter.StampSize = *req.StampSize
	}
}
