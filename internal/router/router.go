// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/sku-generator/internal/config"
	"github.com/javajoker/sku-generator/internal/handlers"
	"github.com/javajoker/sku-generator/internal/middleware"
	"github.com/javajoker/sku-generator/internal/services"
)

// Initialize builds the engine. The returned stop func releases the
// background work started for it and must be called on shutdown.
func Initialize(catalogService *services.CatalogService, cfg *config.Config) (*gin.Engine, func()) {
	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	pieceHandler := handlers.NewPieceHandler(catalogService)
	variantHandler := handlers.NewVariantHandler(catalogService)
	skuHandler := handlers.NewSkuHandler(catalogService)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Cors.AllowOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	v1.Use(limiter.Middleware())
	{
		// Catalog routes
		catalogRoutes := v1.Group("/catalog")
		{
			catalogRoutes.GET("", catalogHandler.GetCatalog)
			catalogRoutes.PUT("/active", catalogHandler.SetActiveProduct)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PATCH("/:id", productHandler.UpdateProductField)
			products.DELETE("/:id", productHandler.DeleteProduct)

			// Piece routes
			pieces := products.Group("/:id/pieces")
			{
				pieces.POST("", pieceHandler.AddPiece)
				pieces.GET("/available", pieceHandler.GetAvailablePieces)
				pieces.PUT("/:pieceId/value", pieceHandler.SetPieceValue)
				pieces.POST("/:pieceId/toggle", pieceHandler.TogglePieceActive)
				pieces.GET("/:pieceId/usage", pieceHandler.GetPieceUsage)
				pieces.DELETE("/:pieceId", pieceHandler.DeletePiece)
			}

			// Variant routes
			variants := products.Group("/:id/variants")
			{
				variants.POST("", variantHandler.CreateVariant)
				variants.PUT("/:variantId", variantHandler.UpdateVariant)
				variants.DELETE("/:variantId", variantHandler.DeleteVariant)
				variants.POST("/:variantId/reorder", variantHandler.ReorderPiece)
				variants.GET("/:variantId/sku", skuHandler.GetVariantSku)
			}

			// SKU table routes
			products.GET("/:id/skus", skuHandler.GetSkuTable)
			products.GET("/:id/skus/export", skuHandler.ExportSkuTable)
		}
	}

	return r, limiter.Stop
}
