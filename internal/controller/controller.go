package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/prodigyhire/backend/internal/apperror"
	"github.com/prodigyhire/backend/internal/dto"
)

// RespondError translates a domain error into the response envelope. Only
// unexpected faults are logged here; expected domain failures were already
// decided at the service layer.
func RespondError(c *gin.Context, err error) {
	e := apperror.From(err)
	if e.Code == apperror.CodeUnknown {
		log.Error().Err(e).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.JSON(e.HTTPStatus(), dto.Error(e.Message))
}

// ParseID reads a numeric path parameter; on a malformed value it writes
// the 400 response itself and reports false.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid "+name+" format"))
		return 0, false
	}
	return uint(id), true
}
