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

// vehicleRateHandler handles the rates-admin HTTP endpoints.
type vehicleRateHandler struct {
	rateService portssvc.VehicleRateSvcFacade
	rateStore   portssvc.RateStoreSvcFacade
}

func newVehicleRateHandler(rs portssvc.VehicleRateSvcFacade, store portssvc.RateStoreSvcFacade) *vehicleRateHandler {
	return &vehicleRateHandler{rateService: rs, rateStore: store}
}

// registerVehicleRateRoutes registers routes related to vehicle rates.
// Reads are open to any authenticated user; writes are admin only.
func registerVehicleRateRoutes(rg *gin.RouterGroup, rateService portssvc.VehicleRateSvcFacade, rateStore portssvc.RateStoreSvcFacade) {
	h := newVehicleRateHandler(rateService, rateStore)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.listVehicleRates)
		rates.GET("/:vehicleType", h.getVehicleRateByType)

		admin := rates.Group("", middleware.RequireAdmin())
		{
			admin.POST("", h.createVehicleRate)
			admin.PUT("/:vehicleType", h.updateVehicleRate)
			admin.DELETE("/:vehicleType", h.deleteVehicleRate)
			admin.POST("/refresh", h.refreshRateStore)
		}
	}
}

// createVehicleRate godoc
// @Summary Create a vehicle rate
// @Description Adds the rate row for a new vehicle category (admin operation)
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateVehicleRateRequest true "Rate details"
// @Success 201 {object} dto.VehicleRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Rate already exists"
// @Security BearerAuth
// @Router /rates [post]
func (h *vehicleRateHandler) createVehicleRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVehicleRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVehicleRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.rateService.CreateVehicleRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: fmt.Sprintf("Rate for '%s' already exists", req.VehicleType)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create vehicle rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleRateResponse(created))
}

// listVehicleRates godoc
// @Summary List vehicle rates
// @Description Retrieves all configured vehicle rates
// @Tags rates
// @Produce json
// @Success 200 {array} dto.VehicleRateResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *vehicleRateHandler) listVehicleRates(c *gin.Context) {
	rates, err := h.rateService.ListVehicleRates(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list vehicle rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rates"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVehicleRateResponse(rates))
}

// getVehicleRateByType godoc
// @Summary Get a vehicle rate
// @Description Retrieves the rate row for one vehicle type
// @Tags rates
// @Produce json
// @Param vehicleType path string true "Vehicle type (e.g. STANDARD)"
// @Success 200 {object} dto.VehicleRateResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/{vehicleType} [get]
func (h *vehicleRateHandler) getVehicleRateByType(c *gin.Context) {
	vehicleType := strings.ToUpper(c.Param("vehicleType"))

	rate, err := h.rateService.GetVehicleRateByType(c.Request.Context(), vehicleType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("No rate for vehicle type '%s'", vehicleType)})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get vehicle rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve rate"})
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleRateResponse(rate))
}

// updateVehicleRate godoc
// @Summary Update a vehicle rate
// @Description Replaces the pricing amounts for a vehicle type (admin operation)
// @Tags rates
// @Accept json
// @Produce json
// @Param vehicleType path string true "Vehicle type"
// @Param rate body dto.UpdateVehicleRateRequest true "New amounts"
// @Success 200 {object} dto.VehicleRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/{vehicleType} [put]
func (h *vehicleRateHandler) updateVehicleRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleType := strings.ToUpper(c.Param("vehicleType"))

	var req dto.UpdateVehicleRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateVehicleRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.rateService.UpdateVehicleRate(c.Request.Context(), vehicleType, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("No rate for vehicle type '%s'", vehicleType)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update vehicle rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleRateResponse(updated))
}

// deleteVehicleRate godoc
// @Summary Delete a vehicle rate
// @Description Removes the rate row for a vehicle type (admin operation)
// @Tags rates
// @Produce json
// @Param vehicleType path string true "Vehicle type"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/{vehicleType} [delete]
func (h *vehicleRateHandler) deleteVehicleRate(c *gin.Context) {
	vehicleType := strings.ToUpper(c.Param("vehicleType"))

	deleterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.rateService.DeleteVehicleRate(c.Request.Context(), vehicleType, deleterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("No rate for vehicle type '%s'", vehicleType)})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to delete vehicle rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete rate"})
		return
	}
	c.Status(http.StatusNoContent)
}

// refreshRateStore godoc
// @Summary Force a rate snapshot refresh
// @Description Triggers an immediate re-fetch of the in-memory rate snapshot on this instance (admin operation)
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *vehicleRateHandler) refreshRateStore(c *gin.Context) {
	if err := h.rateStore.Refresh(c.Request.Context()); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Manual rate refresh failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Refresh failed, previous snapshot still in use"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
