package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tomatoplanet/leads-go/fieldschema"
	"github.com/tomatoplanet/leads-go/response"
)

type SchemaHandler struct{}

func NewSchemaHandler() *SchemaHandler {
	return &SchemaHandler{}
}

// GetSchema godoc
// @Summary Fetch a field schema
// @Description Returns the exact JSON Schema document the server validates
// @Description submissions with, so clients can validate against the same
// @Description definition.
// @Produce json
// @Param kind path string true "brand | creator | contact"
// @Success 200 {object} object
// @Failure 404 {object} response.ErrorResponse
// @Router /api/schemas/{kind} [get]
func (h *SchemaHandler) GetSchema(c *gin.Context) {
	kind := c.Param("kind")
	if !fieldschema.ValidKind(kind) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Unknown schema"})
		return
	}

	raw, err := fieldschema.Raw(fieldschema.Kind(kind))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Unknown schema"})
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}
