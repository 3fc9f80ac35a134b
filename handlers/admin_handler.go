package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tomatoplanet/leads-go/dto"
	"github.com/tomatoplanet/leads-go/middleware"
	"github.com/tomatoplanet/leads-go/response"
	"github.com/tomatoplanet/leads-go/services"
)

type AdminHandler struct {
	service *services.AdminService
}

func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// Login godoc
// @Summary Admin login
// @Accept json
// @Produce json
// @Param payload body dto.AdminLoginDTO true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var input dto.AdminLoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Username and password are required"})
		return
	}

	user, err := h.service.Authenticate(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, Username: user.Username})
}

// ListBrand godoc
// @Summary List brand applications, newest first
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ListResponse
// @Router /api/admin/applications/brand [get]
func (h *AdminHandler) ListBrand(c *gin.Context) {
	apps, err := h.service.ListBrandApplications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: apps})
}

// ListCreator godoc
// @Summary List creator applications, newest first
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ListResponse
// @Router /api/admin/applications/creator [get]
func (h *AdminHandler) ListCreator(c *gin.Context) {
	apps, err := h.service.ListCreatorApplications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: apps})
}

// ListContact godoc
// @Summary List contact form submissions, newest first
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ListResponse
// @Router /api/admin/applications/contact [get]
func (h *AdminHandler) ListContact(c *gin.Context) {
	subs, err := h.service.ListContactSubmissions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to list submissions"})
		return
	}
	c.JSON(http.StatusOK, response.ListResponse{Data: subs})
}

// Stats godoc
// @Summary Application counts, total and trailing 24h
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StatsResponse
// @Router /api/admin/applications/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
