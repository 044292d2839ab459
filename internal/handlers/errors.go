package handlers

import (
	"errors"
	"net/http"

	"boggle-server/internal/apierr"

	"github.com/gin-gonic/gin"
)

// writeError maps a store/projection error onto the status codes from
// spec section 5. Anything not wrapped in apierr.Error is treated as an
// internal failure.
func writeError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Kind.Status(), gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
