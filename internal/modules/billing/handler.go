package billing

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"frontdesk/internal/domain"
	"frontdesk/internal/pkg/response"
	"frontdesk/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/billing", h.Dashboard)
	rg.PATCH("/bookings/:id/payment", h.RecordPayment)
	rg.GET("/bookings/:id/folio.pdf", h.Folio)
}

func (h *Handler) Dashboard(c *gin.Context) {
	q := DashboardQuery{Query: strings.TrimSpace(c.Query("q"))}
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st, err := domain.ParsePaymentStatus(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status must be Paid, Partial or Pending")
			return
		}
		q.Status = st
	}

	out, err := h.service.Dashboard(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load billing")
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "new_cumulative_advance is required")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment", errs)
		return
	}

	b, err := h.service.RecordPayment(c.Request.Context(), PaymentUpdate{
		BookingID:            id,
		NewCumulativeAdvance: *req.NewCumulativeAdvance,
		Method:               req.Method,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, PaymentResponse{
		BookingID:     b.ID,
		Advance:       b.Advance,
		Balance:       b.Balance,
		PaymentStatus: b.PaymentStatus,
		Method:        b.PaymentMethod,
	})
}

func (h *Handler) Folio(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pdf, filename, err := h.service.Folio(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrInvalidPaymentAmount):
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_PAYMENT_AMOUNT", err.Error())
	case errors.Is(err, ErrInvalidPaymentMethod):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update billing")
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}
