package frontdesk

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"frontdesk/internal/domain"
	"frontdesk/internal/modules/lifecycle"
	"frontdesk/internal/pkg/response"
)

type Handler struct {
	service  *Service
	board    *Board
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewHandler builds the console handler. An empty allowedOrigins accepts any
// websocket origin.
func NewHandler(service *Service, board *Board, hub *Hub, allowedOrigins []string) *Handler {
	h := &Handler{service: service, board: board, hub: hub}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	fd := rg.Group("/frontdesk")
	fd.GET("/board", h.GetBoard)
	fd.POST("/refresh", h.Refresh)
	fd.GET("/ws", h.ServeWS)

	bookings := rg.Group("/bookings")
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.POST("/:id/check-in", h.action(h.service.CheckIn))
	bookings.POST("/:id/check-out", h.action(h.service.CheckOut))
	bookings.POST("/:id/cancel", h.action(h.service.Cancel))
	bookings.POST("/:id/confirm", h.action(h.service.Confirm))
}

func (h *Handler) GetBoard(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	snap := h.board.Snapshot()
	out := BoardResponse{Snapshot: snap, Query: q}

	if raw := c.Query("view"); raw != "" {
		v, err := ParseView(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "view must be arrivals, departures or in-house")
			return
		}
		out.View = v
		out.Rows = Search(snap.Buckets.View(v), q)
		if out.Rows == nil {
			out.Rows = []domain.Booking{}
		}
	} else {
		out.Buckets = snap.Buckets.Filter(q)
	}

	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Refresh(c *gin.Context) {
	if err := h.board.Refresh(c.Request.Context()); err != nil {
		_ = c.Error(err)
		response.ErrorWithDetails(c, http.StatusServiceUnavailable, "REFRESH_FAILED",
			"Could not load bookings; showing the last snapshot", h.board.Snapshot())
		return
	}
	response.Success(c, http.StatusOK, h.board.Snapshot())
}

func (h *Handler) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		_ = c.Error(err)
		return
	}
	h.hub.ServeWS(conn, &Event{Type: EventBoard, Payload: h.board.Snapshot()})
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) action(fn func(ctx context.Context, id int64) (*domain.Booking, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		b, err := fn(c.Request.Context(), id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		h.hub.Broadcast(Event{Type: EventBooking, Payload: b})
		response.Success(c, http.StatusOK, b)
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, lifecycle.ErrCheckInNotDue):
		response.Error(c, http.StatusConflict, "CHECK_IN_NOT_DUE", err.Error())
	case errors.Is(err, lifecycle.ErrUnknownAction):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
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

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(strings.TrimSpace(o), "/")] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
