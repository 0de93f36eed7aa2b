package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	statusCode int

	Message string `json:"message"`
}

func (e *Err) Error() string {
	return e.Message
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.statusCode, err)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		statusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrUnauthorized() *Err {
	return &Err{
		statusCode: http.StatusUnauthorized,
		Message:    "unauthorized",
	}
}

func ErrPaymentRequired() *Err {
	return &Err{
		statusCode: http.StatusPaymentRequired,
		Message:    "payment required",
	}
}

func ErrNotFound(object, key string, value any) *Err {
	return &Err{
		statusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%v not found by %v (%v)", object, key, value),
	}
}

// ErrInternalServerError logs the cause and returns a generic message.
// Internal details never reach the response body.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		statusCode: http.StatusInternalServerError,
		Message:    "internal server error",
	}
}
