package handlers

import (
	request "auto_accessories/internal/adapter/http/dto/request"
	response "auto_accessories/internal/adapter/http/dto/response"
	"auto_accessories/internal/adapter/http/middleware"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GarageHandler struct {
	usecase usecase.IGarageUseCase
}

func NewGarageHandler(uc usecase.IGarageUseCase) *GarageHandler {
	return &GarageHandler{usecase: uc}
}

// GetGarage godoc
// @Summary  Current garage vehicle
// @Tags     garage
// @Produce  json
// @Success  200 {object} response.GarageResponse
// @Router   /garage [get]
func (h *GarageHandler) GetGarage(c *gin.Context) {
	v, err := h.usecase.GetSelection(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		respondError(c, mapGarageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGarage(v))
}

// SelectCar godoc
// @Summary  Store the active vehicle
// @Tags     garage
// @Accept   json
// @Produce  json
// @Param    payload body request.VehicleRequest true "Vehicle"
// @Success  200 {object} response.GarageResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /garage [put]
func (h *GarageHandler) SelectCar(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	v, err := h.usecase.SelectCar(c.Request.Context(), middleware.SessionID(c), payload.ModelName, payload.Segment)
	if err != nil {
		respondError(c, mapGarageError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromGarage(&v))
}

// ClearGarage godoc
// @Summary  Forget the active vehicle
// @Tags     garage
// @Success  204
// @Router   /garage [delete]
func (h *GarageHandler) ClearGarage(c *gin.Context) {
	if err := h.usecase.ClearGarage(c.Request.Context(), middleware.SessionID(c)); err != nil {
		respondError(c, mapGarageError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapGarageError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
