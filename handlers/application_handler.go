package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tomatoplanet/leads-go/dto"
	"github.com/tomatoplanet/leads-go/i18n"
	"github.com/tomatoplanet/leads-go/response"
	"github.com/tomatoplanet/leads-go/services"
)

// Wire messages are fixed: validation failures are collapsed to one opaque
// line (no field detail leaves the server), everything else is the generic
// retry message.
const (
	msgInvalidFields = "Invalid fields."
	msgSubmitFailed  = "Failed to submit application. Please try again."
)

type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// SubmitBrand godoc
// @Summary Submit a brand partnership application
// @Accept json
// @Produce json
// @Param payload body dto.BrandApplicationInput true "Application fields"
// @Success 200 {object} response.SubmitResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/applications/brand [post]
func (h *ApplicationHandler) SubmitBrand(c *gin.Context) {
	var input dto.BrandApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidFields})
		return
	}

	message, err := h.service.SubmitBrand(locale(c), input)
	h.reply(c, message, err)
}

// SubmitCreator godoc
// @Summary Submit a creator application
// @Accept json
// @Produce json
// @Param payload body dto.CreatorApplicationInput true "Application fields"
// @Success 200 {object} response.SubmitResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/applications/creator [post]
func (h *ApplicationHandler) SubmitCreator(c *gin.Context) {
	var input dto.CreatorApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidFields})
		return
	}

	message, err := h.service.SubmitCreator(locale(c), input)
	h.reply(c, message, err)
}

// SubmitContact godoc
// @Summary Submit the unified contact form
// @Accept json
// @Produce json
// @Param payload body dto.ContactFormInput true "Form fields"
// @Success 200 {object} response.SubmitResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /api/applications/contact [post]
func (h *ApplicationHandler) SubmitContact(c *gin.Context) {
	var input dto.ContactFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidFields})
		return
	}

	message, err := h.service.SubmitContact(locale(c), input)
	h.reply(c, message, err)
}

func (h *ApplicationHandler) reply(c *gin.Context, message string, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, response.SubmitResponse{Success: message})
	case errors.Is(err, services.ErrInvalidFields):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: msgInvalidFields})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: msgSubmitFailed})
	}
}

func locale(c *gin.Context) string {
	return i18n.MatchLocale(c.GetHeader("Accept-Language"))
}
