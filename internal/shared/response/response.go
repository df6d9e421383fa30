package response

import (
	"github.com/gin-gonic/gin"
)

// The stub store mirrors the upstream record API, which returns raw JSON
// bodies on success. Only error responses use this envelope.
type ErrorEnvelope struct {
	Ok    bool `json:"ok"`
	Error any  `json:"error"`
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ErrorEnvelope{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
