package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aartrack/aar-backend/internal/http/response"
)

// parseIDParam reads a numeric path parameter. On a bad value it writes the
// 400 response itself and returns ok=false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
