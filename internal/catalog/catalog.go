package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/javajoker/sku-generator/internal/models"
)

// StorageKey is the well-known key the catalog document is stored under.
const StorageKey = "skuGenerator"

func Empty() models.Catalog {
	return models.Catalog{Products: []models.Product{}}
}

// Decode parses a persisted document. Absent or malformed input yields an
// empty catalog together with the parse error, which callers may log and
// otherwise ignore.
func Decode(data []byte) (models.Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Empty(), nil
	}

	var c models.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Empty(), fmt.Errorf("failed to decode catalog: %w", err)
	}
	return Normalize(c), nil
}

func Encode(c models.Catalog) ([]byte, error) {
	data, err := json.Marshal(Normalize(c))
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return data, nil
}

// Normalize replaces nil lists with empty ones and raises quantities below 1
// to 1. Dangling references are kept as they are.
func Normalize(c models.Catalog) models.Catalog {
	products := make([]models.Product, 0, len(c.Products))
	for _, p := range c.Products {
		pieces := make([]models.Piece, len(p.Pieces))
		copy(pieces, p.Pieces)

		variants := make([]models.Variant, 0, len(p.Variants))
		for _, v := range p.Variants {
			refs := make([]models.PieceRef, 0, len(v.PieceIDs))
			for _, r := range v.PieceIDs {
				if r.Quantity < 1 {
					r.Quantity = 1
				}
				refs = append(refs, r)
			}
			v.PieceIDs = refs
			variants = append(variants, v)
		}

		p.Pieces = pieces
		p.Variants = variants
		products = append(products, p)
	}
	return models.Catalog{Products: products}
}

func FindProduct(c models.Catalog, id string) (models.Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// CreateProduct appends a product with default settings. An empty name
// declines the operation and returns the catalog unchanged with ok == false.
func CreateProduct(c models.Catalog, newID IDGenerator, name string) (models.Catalog, models.Product, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, models.Product{}, false
	}

	product := NewProduct(newID(), name)
	products := make([]models.Product, 0, len(c.Products)+1)
	products = append(products, c.Products...)
	products = append(products, product)
	return models.Catalog{Products: products}, product, true
}

// ReplaceProduct swaps in a new version of an existing product. Unknown ids
// leave the catalog unchanged.
func ReplaceProduct(c models.Catalog, product models.Product) models.Catalog {
	products := make([]models.Product, len(c.Products))
	for i, p := range c.Products {
		if p.ID == product.ID {
			p = product
		}
		products[i] = p
	}
	return models.Catalog{Products: products}
}

// UpdateProductField applies UpdateField to one product of the catalog.
func UpdateProductField(c models.Catalog, productID string, field Field, value any) (models.Catalog, error) {
	product, ok := FindProduct(c, productID)
	if !ok {
		return c, nil
	}

	updated, err := UpdateField(product, field, value)
	if err != nil {
		return c, err
	}
	return ReplaceProduct(c, updated), nil
}

// DeleteProduct removes the product together with its pieces and variants.
func DeleteProduct(c models.Catalog, productID string) models.Catalog {
	products := make([]models.Product, 0, len(c.Products))
	for _, p := range c.Products {
		if p.ID != productID {
			products = append(products, p)
		}
	}
	return models.Catalog{Products: products}
}

// DefaultActive returns the id of the first product, or "" for an empty
// catalog.
func DefaultActive(c models.Catalog) string {
	if len(c.Products) == 0 {
		return ""
	}
	return c.Products[0].ID
}
