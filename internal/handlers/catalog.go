// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/sku-generator/internal/services"
	"github.com/javajoker/sku-generator/internal/utils"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

type SetActiveProductRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// GET /catalog
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"catalog":           h.catalogService.Catalog(),
		"active_product_id": h.catalogService.ActiveProductID(),
	})
}

// PUT /catalog/active
func (h *CatalogHandler) SetActiveProduct(c *gin.Context) {
	var req SetActiveProductRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.catalogService.SetActiveProduct(req.ProductID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"active_product_id": req.ProductID,
	})
}
