package letters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateLetterRequestValidate(t *testing.T) {
	req := CreateLetterRequest{
		Title:         "Undangan Rapat Koordinasi",
		CategoryID:    1,
		StampPage:     1,
		StampXPercent: 0.5,
		StampYPercent: 0.15,
		StampSize:     80,
	}
	assert.Empty(t, req.Validate())
}

func TestCreateLetterRequestValidateStampPlacement(t *testing.T) {
	req := CreateLetterRequest{
		Title:         "Undangan",
		CategoryID:    1,
		StampXPercent: 1.2,
		StampYPercent: -0.1,
		StampSize:     -5,
	}

	errs := req.Validate()
	assert.Contains(t, errs, "stamp_x_percent")
	assert.Contains(t, errs, "stamp_y_percent")
	assert.Contains(t, errs, "stamp_size")
}

func TestCreateLetterRequestValidateRequiredFields(t *testing.T) {
	req := CreateLetterRequest{Title: "   "}

	errs := req.Validate()
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "category_id")
}

func TestUpdateLetterRequestValidateIgnoresUnsetFields(t *testing.T) {
	req := UpdateLetterRequest{}
	assert.Empty(t, req.Validate())

	empty := ""
	req.Title = &empty
	assert.Contains(t, req.Validate(), "title")
}

func TestToModelDefaultsStampPage(t *testing.T) {
	req := CreateLetterRequest{Title: "Undangan", CategoryID: 2}

	letter := req.ToModel()
	assert.Equal(t, 1, letter.StampPage)
	assert.Equal(t, "Undangan", letter.Title)
}
