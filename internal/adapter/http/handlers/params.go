package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

// parseIDParam parses a positive integer path parameter, writing the 400
// response itself when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.Error(apiresponse.MsgInvalidID, middleware.GetLang(c)),
		)
		return 0, false
	}
	return id, true
}
