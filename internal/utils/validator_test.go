package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/sku-generator/internal/models"
)

type variantInput struct {
	Name     string            `validate:"notblank"`
	PieceIDs []models.PieceRef `validate:"min=1,dive"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&variantInput{
		Name:     "Set",
		PieceIDs: []models.PieceRef{{ID: "a", Quantity: 10}},
	}))

	errs := GetValidationErrors(ValidateStruct(&variantInput{Name: "  "}))
	if assert.Len(t, errs, 2) {
		assert.Equal(t, ValidationError{Field: "name", Tag: "notblank", Message: "Name is required"}, errs[0])
		assert.Equal(t, "pieceids", errs[1].Field)
		assert.Equal(t, "PieceIDs must contain at least 1 item(s)", errs[1].Message)
	}
}

func TestValidateQuantityBounds(t *testing.T) {
	errs := GetValidationErrors(ValidateStruct(&variantInput{
		Name:     "Set",
		PieceIDs: []models.PieceRef{{ID: "a", Quantity: 0}, {ID: "", Quantity: 11}},
	}))

	tags := []string{}
	for _, e := range errs {
		tags = append(tags, e.Tag)
	}
	assert.ElementsMatch(t, []string{"min", "required", "max"}, tags)
}

func TestGetValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
