package dispositions

import (
	"strings"
	"time"

	"github.com/synchromes/esurat-sub001/models"
)

type CreateDispositionRequest struct {
	LetterID     uint       `json:"letter_id" form:"letter_id"`
	Recipients   string     `json:"recipients" form:"recipients"`
	Instructions string     `json:"instructions" form:"instructions"`
	DueDate      *time.Time `json:"due_date" form:"due_date"`
}

func (r *CreateDispositionRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.LetterID == 0 {
		errors["letter_id"] = "letter_id is required"
	}
	if strings.TrimSpace(r.Recipients) == "" {
		errors["recipients"] = "recipients is required"
	}

	return errors
}

func (r *CreateDispositionRequest) ToModel() models.Disposition {
	return models.Disposition{
		LetterID:     r.LetterID,
		Recipients:   strings.TrimSpace(r.Recipients),
		Instructions: strings.TrimSpace(r.Instructions),
		DueDate:      r.DueDate,
	}
}

type UpdateDispositionRequest struct {
	Recipients   *string    `json:"recipients" form:"recipients"`
	Instructions *string    `json:"instructions" form:"instructions"`
	DueDate      *time.Time `json:"due_date" form:"due_date"`
}

func (r *UpdateDispositionRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if r.Recipients != nil && strings.TrimSpace(*r.Recipients) == "" {
		errors["recipients"] = "recipients cannot be empty"
	}

	return errors
}

func ApplyUpdate(d *models.Disposition, req *UpdateDispositionRequest) {
	if d == nil || req == nil {
		return
	}

	if req.Recipients != nil {
		d.Recipients = strings.TrimSpace(*req.Recipients)
	}
	if req.Instructions != nil {
		d.Instructions = strings.TrimSpace(*req.Instructions)
	}
	if req.DueDate != nil {
		d.DueDate = req.DueDate
	}
}

type SetNumberRequest struct {
	Number string `json:"number"`
}

func (r *SetNumberRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Number) == "" {
		errors["number"] = "number is required"
	}

	return errors
}
