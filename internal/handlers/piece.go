// internal/handlers/piece.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/sku-generator/internal/i18n"
	"github.com/javajoker/sku-generator/internal/services"
	"github.com/javajoker/sku-generator/internal/utils"
)

type PieceHandler struct {
	catalogService *services.CatalogService
}

func NewPieceHandler(catalogService *services.CatalogService) *PieceHandler {
	return &PieceHandler{
		catalogService: catalogService,
	}
}

type AddPieceRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Value string `json:"value"`
}

type SetPieceValueRequest struct {
	Value string `json:"value"`
}

// POST /products/:id/pieces
func (h *PieceHandler) AddPiece(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddPieceRequest
	if !bindJSON(c, &req) {
		return
	}

	piece, err := h.catalogService.AddPiece(c.Request.Context(), c.Param("id"), req.Name, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPieceAdded, piece.Name),
		"piece":   piece,
	})
}

// PUT /products/:id/pieces/:pieceId/value
func (h *PieceHandler) SetPieceValue(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SetPieceValueRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.SetPieceValue(c.Request.Context(), c.Param("id"), c.Param("pieceId"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPieceUpdated),
		"product": product,
	})
}

// POST /products/:id/pieces/:pieceId/toggle
func (h *PieceHandler) TogglePieceActive(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	product, err := h.catalogService.TogglePieceActive(c.Request.Context(), c.Param("id"), c.Param("pieceId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPieceUpdated),
		"product": product,
	})
}

// GET /products/:id/pieces/:pieceId/usage
func (h *PieceHandler) GetPieceUsage(c *gin.Context) {
	variantIDs, err := h.catalogService.PieceUsage(c.Param("id"), c.Param("pieceId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"in_use":      len(variantIDs) > 0,
		"variant_ids": variantIDs,
	})
}

// DELETE /products/:id/pieces/:pieceId
func (h *PieceHandler) DeletePiece(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	product, err := h.catalogService.DeletePiece(c.Request.Context(), c.Param("id"), c.Param("pieceId"), confirmFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyPieceDeleted),
		"product": product,
	})
}

// GET /products/:id/pieces/available
func (h *PieceHandler) GetAvailablePieces(c *gin.Context) {
	pieces, err := h.catalogService.AvailablePieces(c.Param("id"), c.Query("variant_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"pieces": pieces,
	})
}
