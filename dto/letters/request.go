package letters

import (
	"strings"
	"time"
)

type CreateLetterRequest struct {
	Title      string     `json:"title" form:"title"`
	CategoryID uint       `json:"category_id" form:"category_id"`
	Notes      string     `json:"notes" form:"notes"`
	LetterDate *time.Time `json:"letter_date" form:"letter_date"`

	StampPage     int     `json:"stamp_page" form:"stamp_page"`
	StampXPercent float64 `json:"stamp_x_percent" form:"stamp_x_percent"`
	StampYPercent float64 `json:"stamp_y_percent" form:"stamp_y_percent"`
	StampSize     float64 `json:"stamp_size" form:"stamp_size"`
}

func (r *CreateLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "title is required"
	}
	if r.CategoryID == 0 {
		errors["category_id"] = "category_id is required"
	}
	if r.StampPage < 0 {
		errors["stamp_page"] = "stamp_page must be positive"
	}
	if r.StampXPercent < 0 || r.StampXPercent > 1 {
		errors["stamp_x_percent"] = "stamp_x_percent must be between 0 and 1"
	}
	if r.StampYPercent < 0 || r.StampYPercent > 1 {
		errors["stamp_y_percent"] = "stamp_y_percent must be between 0 and 1"
	}
	if r.StampSize < 0 {
		errors["stamp_size"] = "stamp_size must be positive"
	}

	return errors
}

type UpdateLetterRequest struct {
	Title      *string    `json:"title" form:"title"`
	CategoryID *uint      `json:"category_id" form:"category_id"`
	Notes      *string    `json:"notes" form:"notes"`
	LetterDate *time.Time `json:"letter_date" form:"letter_date"`

	StampPage     *int     `json:"stamp_page" form:"stamp_page"`
	StampXPercent *float64 `json:"stamp_x_percent" form:"stamp_x_percent"`
	StampYPercent *float64 `json:"stamp_y_percent" form:"stamp_y_percent"`
	StampSize     *float64 `json:"stamp_size" form:"stamp_size"`
}

func (r *UpdateLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errors["title"] = "title cannot be empty"
	}
	if r.CategoryID != nil && *r.CategoryID == 0 {
		errors["category_id"] = "category_id cannot be zero"
	}
	if r.StampXPercent != nil && (*r.StampXPercent < 0 || *r.StampXPercent > 1) {
		errors["stamp_x_percent"] = "stamp_x_percent must be between 0 and 1"
	}
	if r.StampYPercent != nil && (*r.StampYPercent < 0 || *r.StampYPercent > 1) {
		errors["stamp_y_percent"] = "stamp_y_percent must be between 0 and 1"
	}
	if r.StampSize != nil && *r.StampSize < 0 {
		errors["stamp_size"] = "stamp_size must be positive"
	}

	return errors
}

type RejectLetterRequest struct {
	Note string `json:"note"`
}

type ArchiveLetterRequest struct {
	ArchiveCodeID uint `json:"archive_code_id"`
}

func (r *ArchiveLetterRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.ArchiveCodeID == 0 {
		errors["archive_code_id"] = "archive_code_id is required"
	}

	return errors
}
