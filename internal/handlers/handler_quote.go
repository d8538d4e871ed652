package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/chauffeurpro/vtc_booking_app/internal/apperrors"
	portssvc "github.com/chauffeurpro/vtc_booking_app/internal/core/ports/services"
	"github.com/chauffeurpro/vtc_booking_app/internal/dto"
	"github.com/chauffeurpro/vtc_booking_app/internal/middleware"
)

// quoteHandler serves price estimates to the public booking page. No auth:
// visitors see prices before creating an account.
type quoteHandler struct {
	pricingService portssvc.PricingSvcFacade
}

func newQuoteHandler(ps portssvc.PricingSvcFacade) *quoteHandler {
	return &quoteHandler{pricingService: ps}
}

// registerQuoteRoutes registers the public quote endpoint behind an IP rate limit.
func registerQuoteRoutes(rg *gin.Engine, pricingService portssvc.PricingSvcFacade) {
	h := newQuoteHandler(pricingService)

	// 30 quotes per minute per IP is plenty for a human tweaking trip options.
	rate, _ := limiter.NewRateFromFormatted("30-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	rg.POST("/api/v1/quotes", limitMiddleware, h.createQuote)
}

// createQuote godoc
// @Summary Get a price estimate
// @Description Computes the price for a trip from distance, vehicle type, options, pickup time and addresses.
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Trip parameters"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate for vehicle type"
// @Failure 503 {object} ErrorResponse "Pricing temporarily unavailable"
// @Router /quotes [post]
func (h *quoteHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	breakdown, err := h.pricingService.CalculatePrice(c.Request.Context(), req.ToQuoteInput())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No rate configured for vehicle type " + req.VehicleType})
		case errors.Is(err, apperrors.ErrNotInitialized), errors.Is(err, apperrors.ErrUnavailable):
			logger.Error("Pricing unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Pricing temporarily unavailable, please retry"})
		default:
			logger.Error("Failed to calculate price", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to calculate price"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(breakdown))
}
