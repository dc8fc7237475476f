package rate

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frontdesk/internal/pkg/response"
	"frontdesk/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the rate endpoints; manage guards the write routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, manage ...gin.HandlerFunc) {
	rg.POST("/rates/preview", h.Preview)
	rg.GET("/rooms", h.ListRooms)
	rg.GET("/rooms/:id", h.GetRoom)

	write := rg.Group("", manage...)
	write.POST("/rooms", h.CreateRoom)
	write.PUT("/rooms/:id", h.UpdateRoom)
}

func (h *Handler) Preview(c *gin.Context) {
	var in RateInput
	// partial forms are fine; only a non-object body is rejected
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	response.Success(c, http.StatusOK, h.service.Preview(in))
}

func (h *Handler) ListRooms(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	rooms, err := h.service.ListRooms(c.Request.Context(), activeOnly)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"room":      room,
		"breakdown": Breakdown(ConfigurationOf(*room)),
	})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	req, ok := bindRoomRequest(c)
	if !ok {
		return
	}
	out, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, out)
}

func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bindRoomRequest(c)
	if !ok {
		return
	}
	out, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Room number, name and kind are required")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrRoomNumberTaken):
		response.Error(c, http.StatusConflict, "ROOM_NUMBER_TAKEN", "Room number already in use")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save room")
	}
}

func bindRoomRequest(c *gin.Context) (RoomRequest, bool) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return req, false
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room", errs)
		return req, false
	}
	return req, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, false
	}
	return id, true
}
