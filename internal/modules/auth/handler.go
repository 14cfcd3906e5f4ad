package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"

	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service     *Service
	frontendURL string
}

func NewHandler(service *Service, frontendURL string) *Handler {
	return &Handler{service: service, frontendURL: frontendURL}
}

// RegisterRoutes mounts the provider redirect dance at the root, the
// way the frontend expects it.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/login", h.Login)
	r.GET("/auth/callback", h.Callback)
}

// RegisterUserRoutes mounts the user directory under the API group.
func (h *Handler) RegisterUserRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
}

func (h *Handler) Login(c *gin.Context) {
	c.Redirect(http.StatusFound, h.service.LoginURL(randomState()))
}

func (h *Handler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.Error(c, http.StatusBadRequest, "Missing authorization code.")
		return
	}

	id, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "Authentication Failed")
		return
	}

	q := url.Values{}
	q.Set("name", id.Name)
	q.Set("email", id.Email)
	q.Set("jobTitle", id.JobTitle)
	c.Redirect(http.StatusFound, h.frontendURL+"/dashboard?"+q.Encode())
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Server error.")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// randomState is best-effort CSRF noise. The callback does not keep
// session state to verify it against; the original flow does not
// either.
func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "state"
	}
	return hex.EncodeToString(b)
}
