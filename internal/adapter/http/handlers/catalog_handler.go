package handlers

import (
	request "auto_accessories/internal/adapter/http/dto/request"
	response "auto_accessories/internal/adapter/http/dto/response"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the product catalog, the admin product editor and the
// static vehicle and rate tables.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts godoc
// @Summary  List products
// @Tags     catalog
// @Produce  json
// @Param    category query string false "Category filter"
// @Success  200 {array} response.ProductResponse
// @Router   /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct godoc
// @Summary  Get a product
// @Tags     catalog
// @Produce  json
// @Param    id path string true "Product ID"
// @Success  200 {object} response.ProductResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(p))
}

// UpsertProduct godoc
// @Summary  Create or replace a product, including its installation override
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    id      path string                       true "Product ID"
// @Param    payload body request.UpsertProductRequest true "Product"
// @Success  200 {object} response.ProductResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /admin/products/{id} [put]
func (h *CatalogHandler) UpsertProduct(c *gin.Context) {
	var payload request.UpsertProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	saved, err := h.usecase.UpsertProduct(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		respondError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(saved))
}

// ListVehicles godoc
// @Summary  Vehicle catalog grouped by brand
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.VehicleBrandResponse
// @Router   /vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromVehicleBrands(h.usecase.ListVehicles()))
}

// InstallationRates godoc
// @Summary  Installation rate per vehicle segment
// @Tags     catalog
// @Produce  json
// @Success  200 {array} response.InstallationRateResponse
// @Router   /installation/rates [get]
func (h *CatalogHandler) InstallationRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromRateMatrix(h.usecase.InstallationRates()))
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidProduct) {
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT", "Invalid product", http.StatusBadRequest)
	}
	return internalError(err)
}
