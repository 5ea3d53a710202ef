// internal/handlers/variant.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/sku-generator/internal/i18n"
	"github.com/javajoker/sku-generator/internal/models"
	"github.com/javajoker/sku-generator/internal/services"
	"github.com/javajoker/sku-generator/internal/utils"
)

type VariantHandler struct {
	catalogService *services.CatalogService
}

func NewVariantHandler(catalogService *services.CatalogService) *VariantHandler {
	return &VariantHandler{
		catalogService: catalogService,
	}
}

// VariantRequest is shared by create and update. Piece references may be
// bare ids or {id, quantity} objects.
type VariantRequest struct {
	Name     string            `json:"name" validate:"notblank"`
	PieceIDs []models.PieceRef `json:"pieceIds" validate:"min=1,dive"`
}

type ReorderPieceRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// POST /products/:id/variants
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req VariantRequest
	if !bindJSON(c, &req) {
		return
	}

	variant, err := h.catalogService.AddVariant(c.Request.Context(), c.Param("id"), req.Name, req.PieceIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariantCreated, variant.Name),
		"variant": variant,
	})
}

// PUT /products/:id/variants/:variantId
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req VariantRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.UpdateVariant(c.Request.Context(), c.Param("id"), c.Param("variantId"), req.Name, req.PieceIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariantUpdated, req.Name),
		"product": product,
	})
}

// DELETE /products/:id/variants/:variantId
func (h *VariantHandler) DeleteVariant(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	product, err := h.catalogService.DeleteVariant(c.Request.Context(), c.Param("id"), c.Param("variantId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariantDeleted),
		"product": product,
	})
}

// POST /products/:id/variants/:variantId/reorder
func (h *VariantHandler) ReorderPiece(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req ReorderPieceRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.ReorderPieceInVariant(c.Request.Context(), c.Param("id"), c.Param("variantId"), req.From, req.To)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVariantReordered),
		"product": product,
	})
}
