// internal/handlers/sku.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/sku-generator/internal/services"
	"github.com/javajoker/sku-generator/internal/utils"
)

type SkuHandler struct {
	catalogService *services.CatalogService
}

func NewSkuHandler(catalogService *services.CatalogService) *SkuHandler {
	return &SkuHandler{
		catalogService: catalogService,
	}
}

// GET /products/:id/variants/:variantId/sku
func (h *SkuHandler) GetVariantSku(c *gin.Context) {
	sku, err := h.catalogService.GenerateSku(c.Param("id"), c.Param("variantId"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"variant_id": c.Param("variantId"),
		"sku":        sku,
	})
}

// GET /products/:id/skus
func (h *SkuHandler) GetSkuTable(c *gin.Context) {
	rows, err := h.catalogService.SkuRows(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"skus": rows,
	})
}

// GET /products/:id/skus/export?format=table|names|skus
func (h *SkuHandler) ExportSkuTable(c *gin.Context) {
	format := services.ExportFormat(c.DefaultQuery("format", string(services.ExportTable)))

	text, err := h.catalogService.ExportSkuTable(c.Param("id"), format)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.TextResponse(c, text)
}
