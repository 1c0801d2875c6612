package handlers

import (
	request "auto_accessories/internal/adapter/http/dto/request"
	response "auto_accessories/internal/adapter/http/dto/response"
	"auto_accessories/internal/adapter/http/middleware"
	"auto_accessories/internal/domain/entities"
	"auto_accessories/internal/usecase"
	"auto_accessories/pkg"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// InstallationHandler serves the installation service panel of a product page.
type InstallationHandler struct {
	usecase usecase.IInstallationUseCase
}

func NewInstallationHandler(uc usecase.IInstallationUseCase) *InstallationHandler {
	return &InstallationHandler{usecase: uc}
}

// GetPanel godoc
// @Summary  Resolve the installation panel for a product
// @Tags     installation
// @Produce  json
// @Param    id path string true "Product ID"
// @Success  200 {object} response.InstallationPanelResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /products/{id}/installation [get]
func (h *InstallationHandler) GetPanel(c *gin.Context) {
	view, err := h.usecase.GetPanel(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapInstallationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallationView(view))
}

// SelectVehicle godoc
// @Summary  Pick a catalog vehicle for the installation quote
// @Tags     installation
// @Accept   json
// @Produce  json
// @Param    id      path string                 true "Product ID"
// @Param    payload body request.VehicleRequest true "Vehicle"
// @Success  200 {object} response.InstallationPanelResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /products/{id}/installation/vehicle [put]
func (h *InstallationHandler) SelectVehicle(c *gin.Context) {
	h.submitVehicle(c, h.usecase.SelectVehicle)
}

// SubmitManualVehicle godoc
// @Summary  Enter a vehicle that is not in the catalog
// @Tags     installation
// @Accept   json
// @Produce  json
// @Param    id      path string                 true "Product ID"
// @Param    payload body request.VehicleRequest true "Vehicle"
// @Success  200 {object} response.InstallationPanelResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /products/{id}/installation/manual [put]
func (h *InstallationHandler) SubmitManualVehicle(c *gin.Context) {
	h.submitVehicle(c, h.usecase.SubmitManualVehicle)
}

// Propose godoc
// @Summary  Open a confirmation for adding, removing or re-pricing the service
// @Tags     installation
// @Accept   json
// @Produce  json
// @Param    id      path string                              true "Product ID"
// @Param    payload body request.InstallationProposalRequest true "Action"
// @Success  201 {object} response.PendingConfirmationResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /products/{id}/installation/proposals [post]
func (h *InstallationHandler) Propose(c *gin.Context) {
	var payload request.InstallationProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	action := entities.ConfirmationAction(strings.ToLower(strings.TrimSpace(payload.Action)))
	pending, err := h.usecase.Propose(c.Request.Context(), middleware.SessionID(c), c.Param("id"), action)
	if err != nil {
		respondError(c, mapInstallationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPendingConfirmation(pending))
}

// Confirm godoc
// @Summary  Apply the pending confirmation
// @Tags     installation
// @Accept   json
// @Produce  json
// @Param    id      path string                             true "Product ID"
// @Param    payload body request.InstallationConfirmRequest true "Token"
// @Success  200 {object} response.InstallationPanelResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /products/{id}/installation/confirm [post]
func (h *InstallationHandler) Confirm(c *gin.Context) {
	var payload request.InstallationConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	view, err := h.usecase.Confirm(c.Request.Context(), middleware.SessionID(c), c.Param("id"), payload.Token)
	if err != nil {
		respondError(c, mapInstallationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallationView(view))
}

// Cancel godoc
// @Summary  Dismiss the pending confirmation
// @Tags     installation
// @Produce  json
// @Param    id path string true "Product ID"
// @Success  200 {object} response.InstallationPanelResponse
// @Router   /products/{id}/installation/cancel [post]
func (h *InstallationHandler) Cancel(c *gin.Context) {
	view, err := h.usecase.Cancel(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		respondError(c, mapInstallationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallationView(view))
}

type vehicleSubmitter func(ctx context.Context, sessionID, productID, modelName, segment string) (usecase.InstallationView, error)

func (h *InstallationHandler) submitVehicle(c *gin.Context, submit vehicleSubmitter) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidRequest)
		return
	}
	view, err := submit(c.Request.Context(), middleware.SessionID(c), c.Param("id"), payload.ModelName, payload.Segment)
	if err != nil {
		respondError(c, mapInstallationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInstallationView(view))
}

func mapInstallationError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidConfirmationAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Action must be add, remove or change", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoVehicleSelected):
		return pkg.NewDomainErrorSimple("NO_VEHICLE_SELECTED", "Select a vehicle first", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallationUnavailable):
		return pkg.NewDomainErrorSimple("INSTALLATION_UNAVAILABLE", "Installation is not available for this vehicle", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallationAlreadyActive):
		return pkg.NewDomainErrorSimple("INSTALLATION_ALREADY_ACTIVE", "Installation already added", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallationNotActive):
		return pkg.NewDomainErrorSimple("INSTALLATION_NOT_ACTIVE", "Installation not added", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoPendingConfirmation):
		return pkg.NewDomainErrorSimple("NO_PENDING_CONFIRMATION", "Nothing to confirm", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeNotConfirmed):
		return pkg.NewDomainErrorSimple("CHANGE_NOT_CONFIRMED", "Confirm the vehicle change first", http.StatusConflict)
	case errors.Is(err, usecase.ErrConfirmationMismatch):
		return pkg.NewDomainErrorSimple("CONFIRMATION_MISMATCH", "Confirmation is stale", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductOutOfStock):
		return pkg.NewDomainErrorSimple("OUT_OF_STOCK", "Product out of stock", http.StatusConflict)
	}
	return internalError(err)
}
