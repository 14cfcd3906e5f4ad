package catalog

import (
	"net/http"
	"strconv"

	"staybook/internal/domain"
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
	rg.GET("/accommodation", h.GetHierarchy)

	rg.GET("/cities", h.ListCities)
	rg.POST("/cities", h.CreateCity)
	rg.DELETE("/cities/:id", h.deleteByID(func(c *gin.Context, id int64) error {
		return h.service.cities.Delete(c.Request.Context(), id)
	}))

	rg.POST("/apartments", h.CreateApartment)
	rg.DELETE("/apartments/:id", h.deleteByID(func(c *gin.Context, id int64) error {
		return h.service.accom.DeleteApartment(c.Request.Context(), id)
	}))

	rg.POST("/flats", h.CreateFlat)
	rg.DELETE("/flats/:id", h.deleteByID(func(c *gin.Context, id int64) error {
		return h.service.accom.DeleteFlat(c.Request.Context(), id)
	}))

	rg.POST("/rooms", h.CreateRoom)
	rg.DELETE("/rooms/:id", h.deleteByID(func(c *gin.Context, id int64) error {
		return h.service.accom.DeleteRoom(c.Request.Context(), id)
	}))

	rg.POST("/beds", h.CreateBed)
	rg.DELETE("/beds/:id", h.deleteByID(func(c *gin.Context, id int64) error {
		return h.service.accom.DeleteBed(c.Request.Context(), id)
	}))
}

func (h *Handler) GetHierarchy(c *gin.Context) {
	hier, err := h.service.Hierarchy(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hierarchy": hier})
}

func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.service.cities.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cities": cities})
}

func (h *Handler) CreateCity(c *gin.Context) {
	var city domain.City
	if err := c.ShouldBindJSON(&city); err != nil || city.Name == "" {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.service.cities.Create(c.Request.Context(), &city); err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"city": city})
}

func (h *Handler) CreateApartment(c *gin.Context) {
	var a domain.Apartment
	if err := c.ShouldBindJSON(&a); err != nil || a.Name == "" || a.CityID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.service.accom.CreateApartment(c.Request.Context(), &a); err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"apartment": a})
}

func (h *Handler) CreateFlat(c *gin.Context) {
	var f domain.Flat
	if err := c.ShouldBindJSON(&f); err != nil || f.Name == "" || f.ApartmentID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.service.accom.CreateFlat(c.Request.Context(), &f); err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"flat": f})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var r domain.Room
	if err := c.ShouldBindJSON(&r); err != nil || r.Name == "" || r.FlatID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.service.accom.CreateRoom(c.Request.Context(), &r); err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": r})
}

func (h *Handler) CreateBed(c *gin.Context) {
	var b domain.Bed
	if err := c.ShouldBindJSON(&b); err != nil || b.Name == "" || b.RoomID == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.service.accom.CreateBed(c.Request.Context(), &b); err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"bed": b})
}

func (h *Handler) deleteByID(del func(c *gin.Context, id int64) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid id.")
			return
		}
		if err := del(c, id); err != nil {
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Server error.")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"deleted": id})
	}
}
