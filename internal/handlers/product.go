// internal/handlers/product.go
package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/sku-generator/internal/catalog"
	"github.com/javajoker/sku-generator/internal/i18n"
	"github.com/javajoker/sku-generator/internal/models"
	"github.com/javajoker/sku-generator/internal/services"
	"github.com/javajoker/sku-generator/internal/utils"
)

type ProductHandler struct {
	catalogService *services.CatalogService
}

func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

type CreateProductRequest struct {
	Name string `json:"name" validate:"notblank"`
}

// UpdateProductFieldRequest carries a single field edit. Value is a string
// for the text fields, or the full pieces/variants list.
type UpdateProductFieldRequest struct {
	Field string          `json:"field" validate:"required,oneof=name baseSku delimiter setPrefix pieces variants"`
	Value json.RawMessage `json:"value" validate:"required"`
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products := h.catalogService.ListProducts()

	utils.SuccessResponseWithMeta(c, gin.H{
		"products": products,
	}, gin.H{
		"total":             len(products),
		"active_product_id": h.catalogService.ActiveProductID(),
	})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated, product.Name),
		"product": product,
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"skus":    catalog.SkuRows(product),
	})
}

// PATCH /products/:id
func (h *ProductHandler) UpdateProductField(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req UpdateProductFieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, value, err := decodeFieldValue(req)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "value"), err.Error())
		return
	}

	product, err := h.catalogService.UpdateProductField(c.Request.Context(), c.Param("id"), field, value)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id := c.Param("id")

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id, confirmFromQuery(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":           i18n.T(lang, i18n.KeyProductDeleted, product.Name),
		"active_product_id": h.catalogService.ActiveProductID(),
	})
}

func decodeFieldValue(req UpdateProductFieldRequest) (catalog.Field, any, error) {
	field, ok := catalog.ParseField(req.Field)
	if !ok {
		return "", nil, fmt.Errorf("unknown field %q", req.Field)
	}

	switch {
	case field.IsTextField():
		var s string
		if err := json.Unmarshal(req.Value, &s); err != nil {
			return "", nil, fmt.Errorf("%s must be a string", field)
		}
		return field, s, nil
	case field == catalog.FieldPieces:
		var pieces []models.Piece
		if err := json.Unmarshal(req.Value, &pieces); err != nil {
			return "", nil, fmt.Errorf("pieces must be a list of pieces: %w", err)
		}
		return field, pieces, nil
	default:
		var variants []models.Variant
		if err := json.Unmarshal(req.Value, &variants); err != nil {
			return "", nil, fmt.Errorf("variants must be a list of variants: %w", err)
		}
		return field, variants, nil
	}
}
