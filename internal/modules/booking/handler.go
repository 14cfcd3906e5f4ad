package booking

import (
	"errors"
	"net/http"

	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	id, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMaxStay):
			response.Error(c, http.StatusBadRequest, "Validation error: Maximum stay is 14 days.")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrCityNotFound):
			response.Error(c, http.StatusNotFound, "City not found.")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Server error.")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":   "Booking request submitted successfully.",
		"requestId": id,
	})
}
