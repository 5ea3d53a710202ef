package catalog

import (
	"errors"
	"fmt"

	"github.com/javajoker/sku-generator/internal/models"
)

// Field names a top-level product field that UpdateField can replace.
type Field string

const (
	FieldName      Field = "name"
	FieldBaseSku   Field = "baseSku"
	FieldDelimiter Field = "delimiter"
	FieldSetPrefix Field = "setPrefix"
	FieldPieces    Field = "pieces"
	FieldVariants  Field = "variants"
)

const (
	DefaultDelimiter = " | "
	DefaultSetPrefix = "SET"
)

var (
	ErrUnknownField      = errors.New("unknown product field")
	ErrInvalidFieldValue = errors.New("invalid value for product field")
)

func ParseField(s string) (Field, bool) {
	switch f := Field(s); f {
	case FieldName, FieldBaseSku, FieldDelimiter, FieldSetPrefix, FieldPieces, FieldVariants:
		return f, true
	}
	return "", false
}

// IsTextField reports whether the field holds a plain string.
func (f Field) IsTextField() bool {
	switch f {
	case FieldName, FieldBaseSku, FieldDelimiter, FieldSetPrefix:
		return true
	}
	return false
}

func NewProduct(id, name string) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		BaseSku:   "",
		Delimiter: DefaultDelimiter,
		SetPrefix: DefaultSetPrefix,
		Pieces:    []models.Piece{},
		Variants:  []models.Variant{},
	}
}

// UpdateField replaces one top-level field. Every piece and variant mutation
// is applied through here with FieldPieces or FieldVariants.
func UpdateField(product models.Product, field Field, value any) (models.Product, error) {
	switch field {
	case FieldName, FieldBaseSku, FieldDelimiter, FieldSetPrefix:
		s, ok := value.(string)
		if !ok {
			return product, fmt.Errorf("%w: %s expects a string, got %T", ErrInvalidFieldValue, field, value)
		}
		switch field {
		case FieldName:
			product.Name = s
		case FieldBaseSku:
			product.BaseSku = s
		case FieldDelimiter:
			product.Delimiter = s
		case FieldSetPrefix:
			product.SetPrefix = s
		}
	case FieldPieces:
		pieces, ok := value.([]models.Piece)
		if !ok {
			return product, fmt.Errorf("%w: %s expects a piece list, got %T", ErrInvalidFieldValue, field, value)
		}
		product.Pieces = pieces
	case FieldVariants:
		variants, ok := value.([]models.Variant)
		if !ok {
			return product, fmt.Errorf("%w: %s expects a variant list, got %T", ErrInvalidFieldValue, field, value)
		}
		product.Variants = variants
	default:
		return product, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return product, nil
}

// DeletePiece removes the piece and cascades the removal into every variant.
// It runs unconditionally; asking for confirmation is up to the caller.
func DeletePiece(product models.Product, pieceID string) models.Product {
	product, _ = UpdateField(product, FieldPieces, RemovePiece(product.Pieces, pieceID))
	product, _ = UpdateField(product, FieldVariants, StripPieceRefs(product.Variants, pieceID))
	return product
}
