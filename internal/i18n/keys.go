// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Products
	KeyProductCreated       = "product.created"
	KeyProductUpdated       = "product.updated"
	KeyProductDeleted       = "product.deleted"
	KeyProductNotFound      = "product.not_found"
	KeyProductDeleteConfirm = "product.delete_confirm"

	// Pieces
	KeyPieceAdded        = "piece.added"
	KeyPieceUpdated      = "piece.updated"
	KeyPieceDeleted      = "piece.deleted"
	KeyPieceInUseConfirm = "piece.in_use_confirm"

	// Variants
	KeyVariantCreated   = "variant.created"
	KeyVariantUpdated   = "variant.updated"
	KeyVariantDeleted   = "variant.deleted"
	KeyVariantReordered = "variant.reordered"
	KeyVariantDuplicate = "variant.duplicate_piece"

	// SKU table
	KeySkuCopied = "sku.copied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate_limit.exceeded"
)
