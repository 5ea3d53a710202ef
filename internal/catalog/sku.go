package catalog

import (
	"strconv"
	"strings"

	"github.com/javajoker/sku-generator/internal/models"
)

// SkuTableHeader is the header line of the tab separated SKU table export.
const SkuTableHeader = "Variant Names\tSKUs"

// SkuRow is one line of a product's SKU table.
type SkuRow struct {
	VariantID string `json:"variantId"`
	Name      string `json:"name"`
	Sku       string `json:"sku"`
}

// GenerateSku derives the display SKU of a variant. Missing and inactive
// pieces contribute nothing. An empty result means there is no SKU to show.
func GenerateSku(product models.Product, variant models.Variant) string {
	fragments := make([]string, 0, len(variant.PieceIDs))
	for _, ref := range variant.PieceIDs {
		piece, ok := FindPiece(product.Pieces, ref.ID)
		if !ok || !piece.IsActive {
			continue
		}

		fragment := product.BaseSku + piece.Value
		if ref.Quantity > 1 {
			fragment += "(" + strconv.Itoa(ref.Quantity) + ")"
		}
		fragments = append(fragments, fragment)
	}

	if len(fragments) == 0 {
		return ""
	}

	return product.SetPrefix + product.Delimiter + strings.Join(fragments, product.Delimiter)
}

func SkuRows(product models.Product) []SkuRow {
	rows := make([]SkuRow, 0, len(product.Variants))
	for _, v := range product.Variants {
		rows = append(rows, SkuRow{
			VariantID: v.ID,
			Name:      v.Name,
			Sku:       GenerateSku(product, v),
		})
	}
	return rows
}

// ExportTable renders the SKU table as tab separated text with a header line.
func ExportTable(product models.Product) string {
	lines := make([]string, 0, len(product.Variants))
	for _, row := range SkuRows(product) {
		lines = append(lines, row.Name+"\t"+row.Sku)
	}
	return SkuTableHeader + "\n" + strings.Join(lines, "\n")
}

func ExportNames(product models.Product) string {
	names := make([]string, 0, len(product.Variants))
	for _, v := range product.Variants {
		names = append(names, v.Name)
	}
	return strings.Join(names, "\n")
}

func ExportSkus(product models.Product) string {
	skus := make([]string, 0, len(product.Variants))
	for _, row := range SkuRows(product) {
		skus = append(skus, row.Sku)
	}
	return strings.Join(skus, "\n")
}
