package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gtdn/registry-api/internal/models"
	"github.com/gtdn/registry-api/internal/services"
)

// respondError translates service errors into the wire error shape. Upstream
// failures carry the originating service name; validation failures do not.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: validationErr.Message,
		})
		return
	}

	var tooLarge *services.PayloadTooLargeError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   tooLarge.Error(),
			Service: "justice",
		})
		return
	}

	var apiErr *services.ExternalAPIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.HTTPStatus(), models.ErrorResponse{
			Error:   apiErr.Message,
			Service: apiErr.Service,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: "Internal server error",
	})
}
