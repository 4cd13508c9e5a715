package handlers

import (
	"errors"
	request "material_estimator/internal/adapter/http/dto/request"
	response "material_estimator/internal/adapter/http/dto/response"
	"material_estimator/internal/domain/estimation"
	"material_estimator/internal/usecase"
	"material_estimator/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
	errMissingFields          = pkg.NewDomainErrorSimple("MISSING_FIELDS", "Missing required fields", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for material estimates.
//
// Handlers only decode, validate presence of fields and map errors; all
// arithmetic lives in the estimation engine.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	log     *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, log *zap.Logger) *EstimateHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateHandler{usecase: uc, log: log}
}

// Estimate godoc
// @Summary      Estimate materials
// @Description  Builds the material breakdown for a floor area and design style. Fails when the total exceeds the budget.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.EstimateRequest  true  "Budget, size and design style"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimate [post]
func (h *EstimateHandler) Estimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errMissingFields.HTTPStatus, errMissingFields.ToHTTPError())
		return
	}

	est, err := h.usecase.EstimateMaterials(c.Request.Context(), float64(payload.Budget), float64(payload.Size), payload.DesignStyle)
	if err != nil {
		h.writeError(c, "estimate", err)
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// EstimateFromComponents godoc
// @Summary      Estimate materials from model components
// @Description  Runs a base estimate and rescales it by the named structural components that were added or removed.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ComponentsEstimateRequest  true  "Base inputs and components"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimate-from-components [post]
func (h *EstimateHandler) EstimateFromComponents(c *gin.Context) {
	var payload request.ComponentsEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errMissingFields.HTTPStatus, errMissingFields.ToHTTPError())
		return
	}

	est, err := h.usecase.EstimateFromComponents(c.Request.Context(),
		float64(payload.Budget), float64(payload.Size), payload.DesignStyle, payload.ToComponents())
	if err != nil {
		h.writeError(c, "estimate-from-components", err)
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

// EstimateFromModelChanges godoc
// @Summary      Re-estimate from 3D model part changes
// @Description  Rescales an existing breakdown by the parts added and removed per material. No budget check is made.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ModelChangesRequest  true  "Base materials and per-material part changes"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimate-from-model-changes [post]
func (h *EstimateHandler) EstimateFromModelChanges(c *gin.Context) {
	var payload request.ModelChangesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errMissingFields.HTTPStatus, errMissingFields.ToHTTPError())
		return
	}

	est, err := h.usecase.EstimateFromModelChanges(c.Request.Context(),
		payload.ToBaseMaterials(), payload.ToPartChanges(), payload.DesignStyle)
	if err != nil {
		h.writeError(c, "estimate-from-model-changes", err)
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(est))
}

func (h *EstimateHandler) writeError(c *gin.Context, op string, err error) {
	appErr := mapEstimateError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[estimate][handler] "+op+" failed", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, estimation.ErrInvalidStyle):
		return pkg.NewDomainErrorSimple("INVALID_DESIGN_STYLE", "Invalid design style. Choose from Modern, Classic, or Rustic.", http.StatusBadRequest)
	case errors.Is(err, estimation.ErrBudgetExceeded):
		return pkg.NewDomainErrorSimple("BUDGET_EXCEEDED", "Budget is not enough to cover the estimated total cost.", http.StatusBadRequest)
	case errors.Is(err, estimation.ErrInvalidSize), errors.Is(err, usecase.ErrInvalidComponentChange),
		errors.Is(err, usecase.ErrInvalidBaseMaterial):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingBaseMaterials):
		return errMissingFields
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
