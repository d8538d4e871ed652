package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/middleware"
)

// optionRateHandler handles the option-rates-admin HTTP endpoints.
type optionRateHandler struct {
	optionRateService portssvc.OptionRateSvcFacade
}

func newOptionRateHandler(os portssvc.OptionRateSvcFacade) *optionRateHandler {
	return &optionRateHandler{optionRateService: os}
}

// registerOptionRateRoutes registers routes related to option rates.
func registerOptionRateRoutes(rg *gin.RouterGroup, optionRateService portssvc.OptionRateSvcFacade) {
	h := newOptionRateHandler(optionRateService)

	options := rg.Group("/option-rates")
	{
		options.GET("", h.listOptionRates)
		options.GET("/:optionType", h.getOptionRateByType)

		admin := options.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.createOptionRate)
			admin.PUT("/:optionType", h.updateOptionRate)
			admin.DELETE("/:optionType", h.deleteOptionRate)
		}
	}
}

// createOptionRate godoc
// @Summary Create an option rate
// @Description Adds the surcharge for a new bookable option (admin operation)
// @Tags option-rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateOptionRateRequest true "Option rate details"
// @Success 201 {object} dto.OptionRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /option-rates [post]
func (h *optionRateHandler) createOptionRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOptionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOptionRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.optionRateService.CreateOptionRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: fmt.Sprintf("Option rate for '%s' already exists", req.OptionType)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create option rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create option rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToOptionRateResponse(created))
}

// listOptionRates godoc
// @Summary List option rates
// @Description Retrieves all configured option surcharges
// @Tags option-rates
// @Produce json
// @Success 200 {array} dto.OptionRateResponse
// @Security BearerAuth
// @Router /option-rates [get]
func (h *optionRateHandler) listOptionRates(c *gin.Context) {
	rates, err := h.optionRateService.ListOptionRates(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list option rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list option rates"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListOptionRateResponse(rates))
}

// getOptionRateByType godoc
// @Summary Get an option rate
// @Description Retrieves the surcharge for one option type
// @Tags option-rates
// @Produce json
// @Param optionType path string true "Option type (e.g. CHILD_SEAT)"
// @Success 200 {object} dto.OptionRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /option-rates/{optionType} [get]
func (h *optionRateHandler) getOptionRateByType(c *gin.Context) {
	optionType := strings.ToUpper(c.Param("optionType"))

	rate, err := h.optionRateService.GetOptionRateByType(c.Request.Context(), optionType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("No option rate for '%s'", optionType)})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get option rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve option rate"})
		return
	}
	c.JSON(http.StatusOK, dto.ToOptionRateResponse(rate))
}

// updateOptionRate godoc
// @Summary Update an option rate
// @Description Replaces the surcharge amount for an option type (admin operation)
// @Tags option-rates
// @Accept json
// @Produce json
// @Param optionType path string true "Option type"
// @Param rate body dto.UpdateOptionRateRequest true "New amount"
// @Success 200 {object} dto.OptionRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /option-rates/{optionType} [put]
func (h *optionRateHandler) updateOptionRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	optionType := strings.ToUpper(c.Param("optionType"))

	var req dto.UpdateOptionRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOptionRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.optionRateService.UpdateOptionRate(c.Request.Context(), optionType, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("No option rate for '%s'", optionType)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update option rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update option rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOptionRateResponse(updated))
}

// deleteOptionRate godoc
// @Summary Delete an option rate
// @Description Removes the surcharge row for an option type (admin operation)
// @Tags option-rates
// @Produce json
// @Param optionType path string true "Option type"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /option-rates/{optionType} [delete]
func (h *optionRateHandler) deleteOptionRate(c *gin.Context) {
	optionType := strings.ToUpper(c.Param("optionType"))

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.optionRateService.DeleteOptionRate(c.Request.Context(), optionType, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("No option rate for '%s'", optionType)})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete option rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete option rate"})
		return
	}
	c.Status(http.StatusNoContent)
}
