// Package masters berisi DTO untuk data referensi: kategori surat,
// kode arsip, template, dan setting.
package masters

import (
	"regexp"
	"strings"

	"github.com/synchromes/esurat-sub001/models"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]*$`)

type CategoryRequest struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Color string `json:"color"`
}

func (r *CategoryRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}

	code := strings.TrimSpace(r.Code)
	if code == "" {
		errors["code"] = "code is required"
	} else if !codePattern.MatchString(code) {
		errors["code"] = "code must be uppercase letters, digits, dots or dashes"
	}

	return errors
}

func (r *CategoryRequest) ToModel() models.LetterCategory {
	return models.LetterCategory{
		Name:  strings.TrimSpace(r.Name),
		Code:  strings.TrimSpace(r.Code),
		Color: strings.TrimSpace(r.Color),
	}
}

type ArchiveCodeRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *ArchiveCodeRequest) Validate() map[string]string {
	errors := make(map[string]string)

	code := strings.TrimSpace(r.Code)
	if code == "" {
		errors["code"] = "code is required"
	} else if !codePattern.MatchString(code) {
		errors["code"] = "code must be uppercase letters, digits, dots or dashes"
	}
	if strings.TrimSpace(r.Name) == "" {
		errors["name"] = "name is required"
	}

	return errors
}

func (r *ArchiveCodeRequest) ToModel() models.ArchiveCode {
	return models.ArchiveCode{
		Code:        strings.TrimSpace(r.Code),
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
}

type TemplateRequest struct {
	Title string `json:"title" form:"title"`
}

func (r *TemplateRequest) Validate() map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errors["title"] = "title is required"
	}

	return errors
}

type SettingUpdateRequest struct {
	Value string `json:"value"`
}
