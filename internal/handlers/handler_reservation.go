package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	"github.com/chauffeurpro/vtc_booking_app/internal/core/domain"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/middleware"
)

// reservationHandler handles the booking HTTP endpoints.
type reservationHandler struct {
	reservationService portssvc.ReservationSvcFacade
}

func newReservationHandler(rs portssvc.ReservationSvcFacade) *reservationHandler {
	return &reservationHandler{reservationService: rs}
}

// registerReservationRoutes registers routes related to reservations.
func registerReservationRoutes(rg *gin.RouterGroup, reservationService portssvc.ReservationSvcFacade) {
	h := newReservationHandler(reservationService)

	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.createReservation)
		reservations.GET("", h.listMyReservations)
		reservations.GET("/:id", h.getReservation)
		reservations.PATCH("/:id/status", h.updateReservationStatus)

		admin := reservations.Group("", middleware.RequireAdmin())
		{
			admin.GET("/all", h.listAllReservations)
			admin.PUT("/:id/driver", h.assignDriver)
		}
	}
}

func requesterFromContext(c *gin.Context) (string, domain.UserRole, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return "", "", false
	}
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok {
		role = domain.RoleCustomer
	}
	return userID, role, true
}

// createReservation godoc
// @Summary Book a ride
// @Description Creates a reservation; the price is computed and snapshotted at creation time.
// @Tags reservations
// @Accept json
// @Produce json
// @Param reservation body dto.CreateReservationRequest true "Trip details"
// @Success 201 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Pricing temporarily unavailable"
// @Security BearerAuth
// @Router /reservations [post]
func (h *reservationHandler) createReservation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReservation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotInitialized), errors.Is(err, apperrors.ErrUnavailable):
			logger.Error("Pricing unavailable for reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Pricing temporarily unavailable, please retry"})
		default:
			logger.Error("Failed to create reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create reservation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

// listMyReservations godoc
// @Summary List my reservations
// @Description Retrieves the caller's reservations, newest pickup first, with keyset pagination.
// @Tags reservations
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Resume token from the previous page"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations [get]
func (h *reservationHandler) listMyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reservationService.ListUserReservations(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list reservations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listAllReservations godoc
// @Summary List all reservations
// @Description Retrieves reservations across all users (admin operation).
// @Tags reservations
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Resume token from the previous page"
// @Success 200 {object} dto.ListReservationsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/all [get]
func (h *reservationHandler) listAllReservations(c *gin.Context) {
	var params dto.ListReservationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.reservationService.ListAllReservations(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list all reservations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getReservation godoc
// @Summary Get a reservation
// @Description Retrieves one reservation. Customers see only their own bookings.
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id} [get]
func (h *reservationHandler) getReservation(c *gin.Context) {
	requesterID, role, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.GetReservation(c.Request.Context(), c.Param("id"), requesterID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reservation not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Not allowed to view this reservation"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get reservation", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve reservation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// updateReservationStatus godoc
// @Summary Update reservation status
// @Description Moves a reservation through its lifecycle (confirm, start, complete, cancel).
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param status body dto.UpdateReservationStatusRequest true "Target status"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse "Transition not allowed from current status"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id}/status [patch]
func (h *reservationHandler) updateReservationStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateReservationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReservationStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requesterID, role, ok := requesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.UpdateReservationStatus(c.Request.Context(), c.Param("id"), req, requesterID, role)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reservation not found"})
		} else if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update reservation status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update reservation"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

// assignDriver godoc
// @Summary Assign a driver
// @Description Attaches a driver account to a reservation (admin operation).
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param driver body dto.AssignDriverRequest true "Driver to assign"
// @Success 200 {object} dto.ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reservations/{id}/driver [put]
func (h *reservationHandler) assignDriver(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignDriver", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reservation, err := h.reservationService.AssignDriver(c.Request.Context(), c.Param("id"), req.DriverID, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reservation or driver not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to assign driver", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to assign driver"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}
