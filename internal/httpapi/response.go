package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EAGLE1309/placecraft-sub002/internal/apperr"
)

// respondOK writes the success envelope: {"success": true, ...payload}.
func respondOK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// respondError writes {"success": false, "error": message} with the status
// implied by the error's kind.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
