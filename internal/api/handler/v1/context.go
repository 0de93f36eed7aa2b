package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/eventpass/eventpass-api/internal/api/handler/v1/response"
	"github.com/eventpass/eventpass-api/internal/api/middleware"
)

// userIDFromContext reads the identity attached by the auth middleware.
// A missing or mistyped value means the route was mounted without the
// authenticator, which is treated as an unauthorized request.
func userIDFromContext(ctx *gin.Context) (uint, *response.Err) {
	value, ok := ctx.Get(middleware.CtxKeyUserID)
	if !ok {
		return 0, response.ErrUnauthorized()
	}

	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, response.ErrUnauthorized()
	}

	return userID, nil
}
