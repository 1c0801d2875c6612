package handlers

import (
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func respondError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zap.L().Error("http.request failed",
			zap.String("route", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers errors every shopper-facing use case can return. It
// returns nil for errors it does not know.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Invalid session", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidVehicleName):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_NAME", "Vehicle model name is required", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidVehicleSegment):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE_SEGMENT", "Unknown vehicle segment", http.StatusBadRequest)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
