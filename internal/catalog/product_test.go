package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/sku-generator/internal/models"
)

func TestNewProductDefaults(t *testing.T) {
	p := NewProduct("id-1", "Bedroom")

	assert.Equal(t, "id-1", p.ID)
	assert.Equal(t, "Bedroom", p.Name)
	assert.Equal(t, "", p.BaseSku)
	assert.Equal(t, " | ", p.Delimiter)
	assert.Equal(t, "SET", p.SetPrefix)
	assert.NotNil(t, p.Pieces)
	assert.NotNil(t, p.Variants)
}

func TestUpdateField(t *testing.T) {
	p := NewProduct("id-1", "Bedroom")

	p, err := UpdateField(p, FieldBaseSku, "SKU")
	require.NoError(t, err)
	p, err = UpdateField(p, FieldDelimiter, "-")
	require.NoError(t, err)
	p, err = UpdateField(p, FieldSetPrefix, "KIT")
	require.NoError(t, err)
	p, err = UpdateField(p, FieldName, "Living room")
	require.NoError(t, err)

	pieces := []models.Piece{{ID: "a", Value: "1", IsActive: true}}
	p, err = UpdateField(p, FieldPieces, pieces)
	require.NoError(t, err)
	variants := []models.Variant{{ID: "v", PieceIDs: []models.PieceRef{{ID: "a", Quantity: 1}}}}
	p, err = UpdateField(p, FieldVariants, variants)
	require.NoError(t, err)

	assert.Equal(t, "Living room", p.Name)
	assert.Equal(t, "KIT-SKU1", GenerateSku(p, p.Variants[0]))
}

func TestUpdateFieldRejectsBadInput(t *testing.T) {
	p := NewProduct("id-1", "Bedroom")

	_, err := UpdateField(p, Field("color"), "red")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = UpdateField(p, FieldBaseSku, 42)
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	_, err = UpdateField(p, FieldPieces, "not a list")
	assert.ErrorIs(t, err, ErrInvalidFieldValue)

	_, err = UpdateField(p, FieldVariants, []models.Piece{})
	assert.ErrorIs(t, err, ErrInvalidFieldValue)
}

func TestParseField(t *testing.T) {
	for _, name := range []string{"name", "baseSku", "delimiter", "setPrefix", "pieces", "variants"} {
		f, ok := ParseField(name)
		assert.True(t, ok, name)
		assert.Equal(t, Field(name), f)
	}

	_, ok := ParseField("id")
	assert.False(t, ok)

	assert.True(t, FieldSetPrefix.IsTextField())
	assert.False(t, FieldPieces.IsTextField())
}
