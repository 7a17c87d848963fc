package http_common

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse тело любого ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message" example:"Movie not found"`
}

// MessageResponse ответ без данных
type MessageResponse struct {
	Message string `json:"message" example:"Logged out"`
}

const MsgInternalError = "internal error"

var ErrInvalidID = errors.New("invalid id")

func Abort(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func AbortInternal(ctx *gin.Context) {
	Abort(ctx, http.StatusInternalServerError, MsgInternalError)
}

// ParamUUID parses a path parameter as uuid.
func ParamUUID(ctx *gin.Context, name string) (uuid.UUID, error) {
	raw := ctx.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
