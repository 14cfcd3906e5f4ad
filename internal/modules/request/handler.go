package request

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("", h.List)
	rg.GET("/all", h.ListFlat)
	rg.POST("/export", h.Export)
	rg.POST("/:id/approve", h.Approve)
	rg.POST("/:id/reject", h.Reject)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filters.")
		return
	}

	views, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"requests": views})
}

func (h *Handler) ListFlat(c *gin.Context) {
	rows, err := h.service.ListFlat(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch requests")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{
			"id":           r.ID,
			"start_time":   r.StartTime,
			"end_time":     r.EndTime,
			"status":       r.Status,
			"remarks":      r.Remarks,
			"created_at":   r.CreatedAt,
			"processed_at": r.ProcessedAt,
			"city_id":      r.CityID,
			"apartment_id": r.ApartmentID,
			"flat_id":      r.FlatID,
			"room_id":      r.RoomID,
			"cottage_id":   nil,
			"user": gin.H{
				"id":    r.UserID,
				"name":  r.UserName,
				"email": r.UserEmail,
				"role":  r.UserRole,
			},
		})
	}

	response.Success(c, http.StatusOK, gin.H{"requests": out})
}

func (h *Handler) Export(c *gin.Context) {
	var body ExportBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filters.")
		return
	}

	filename, data, err := h.service.Export(c.Request.Context(), body.Filters)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to export booking history")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request id.")
		return
	}

	var body DecisionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	approval, err := h.service.Approve(c.Request.Context(), id, body)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Request not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to approve request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Request approved.",
		"request": gin.H{
			"id":           approval.ID,
			"status":       approval.Status,
			"apartment_id": approval.ApartmentID,
			"flat_id":      approval.FlatID,
			"room_id":      approval.RoomID,
			"cottage_id":   approval.CottageID,
			"remarks":      approval.Remarks,
		},
	})
}

func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request id.")
		return
	}

	var body DecisionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.service.Reject(c.Request.Context(), id, body.Remarks); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Request not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to reject request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Request rejected.",
		"request": gin.H{
			"id":      id,
			"status":  "rejected",
			"remarks": body.Remarks,
		},
	})
}
