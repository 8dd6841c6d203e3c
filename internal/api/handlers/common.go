package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexlify/careers/internal/services"
	"github.com/nexlify/careers/internal/utils"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
	Field   string     `json:"field,omitempty"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		out := APIError{
			Code:    ae.Code,
			Message: ae.Message,
		}
		// Validation failures carry the offending field through.
		var vf *services.ValidationFailure
		if errors.As(ae.Err, &vf) {
			out.Field = vf.Field
		}
		c.JSON(status, out)
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}
