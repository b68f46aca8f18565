package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/pkg/apperr"
)

type APIError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, message string) {
	if message == "" {
		message = "unknown error"
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: message,
			Code:    code,
		},
	})
}

// RespondAppError maps a service failure to the wire. Internal errors keep
// their detail out of the response body.
func RespondAppError(c *gin.Context, err error) {
	ae, ok := apperr.As(err)
	if !ok {
		RespondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	msg := ae.Error()
	if ae.Status >= http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(ae.Status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    ae.Code,
			Fields:  ae.Fields,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
