// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/sku-generator/internal/i18n"
	"github.com/javajoker/sku-generator/internal/services"
	"github.com/javajoker/sku-generator/internal/utils"
)

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	_ = c.Error(err)

	var inUse *services.PieceInUseError
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.As(err, &inUse):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyPieceInUseConfirm), gin.H{
			"piece_id":    inUse.PieceID,
			"variant_ids": inUse.VariantIDs,
		})
	case errors.Is(err, services.ErrConfirmationRequired):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyProductDeleteConfirm), nil)
	case errors.Is(err, services.ErrInvalidInput):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}

// bindJSON decodes and validates the request body. It writes the error
// response itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, req interface{}) bool {
	lang := utils.GetLangFromContext(c)
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

// confirmFromQuery approves destructive operations when ?confirm=true.
func confirmFromQuery(c *gin.Context) services.ConfirmFunc {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if confirmed {
		return services.Confirmed
	}
	return nil
}
