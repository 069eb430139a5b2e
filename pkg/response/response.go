package response

import (
	"github.com/gin-gonic/gin"

	"github.com/abdrasaq14/payever-test/pkg/apperrors"
)

// Envelope is the error body shape: a fixed human-readable message plus the
// underlying error's description.
type Envelope struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Error writes the normalized error envelope. The status code is derived from
// the error's kind so every kind maps to exactly one code across endpoints.
func Error(c *gin.Context, message string, err error) {
	body := Envelope{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	c.JSON(apperrors.Status(err), body)
}

// Message writes a bare {message} body with an explicit status.
func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Message: message})
}
