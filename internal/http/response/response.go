package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-backend/internal/domain"
)

// Error writes the flat {"error": <message>} body every service uses.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// FromError maps a tagged service error to its status code and writes the
// error body. Anything untagged is a dependency or internal failure.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		Error(c, http.StatusNotFound, domain.Message(err))
	case errors.Is(err, domain.ErrValidation):
		Error(c, http.StatusBadRequest, domain.Message(err))
	case errors.Is(err, domain.ErrConflict):
		Error(c, http.StatusConflict, domain.Message(err))
	default:
		Error(c, http.StatusInternalServerError, err.Error())
	}
}

// JSON writes a 200 with the given payload.
func JSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Raw writes a stored JSON document verbatim.
func Raw(c *gin.Context, status int, data []byte) {
	c.Data(status, "application/json", data)
}
