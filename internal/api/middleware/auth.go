package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eventpass/eventpass-api/internal/pkg/jwthelper"
)

// CtxKeyUserID is where VerifyJWT stores the authenticated user's ID.
const CtxKeyUserID = "userID"

var (
	ErrMissingAuthorizationHeader = errors.New("missing Authorization header")
	ErrInvalidAuthorizationHeader = errors.New("invalid Authorization header")
	ErrSessionNotFound            = errors.New("no active session for token")
)

type SessionChecker interface {
	SessionExists(ctx context.Context, userID uint, token string) (bool, error)
}

type Authenticator struct {
	signingKey []byte
	sessions   SessionChecker
}

func NewAuthenticator(signingKey string, sessions SessionChecker) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		sessions:   sessions,
	}
}

// VerifyJWT gates a route group behind bearer authentication. The check is
// two-step: verify the token's signature and expiry, then require a live
// session for (user, token) so revoked credentials stop working immediately.
// Every failure ends the request with 401 and an empty body.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(ctx, ErrMissingAuthorizationHeader)
			return
		}

		tokenString, err := tokenFromHeader(authHeader)
		if err != nil {
			abortUnauthorized(ctx, err)
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			abortUnauthorized(ctx, err)
			return
		}

		exists, err := a.sessions.SessionExists(ctx.Request.Context(), claims.UserID, tokenString)
		if err != nil {
			zap.L().Error("session lookup failed", zap.Error(err))
			ctx.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		if !exists {
			abortUnauthorized(ctx, ErrSessionNotFound)
			return
		}

		ctx.Set(CtxKeyUserID, claims.UserID)
		ctx.Next()
	}
}

func abortUnauthorized(ctx *gin.Context, err error) {
	zap.L().Debug("request rejected", zap.Error(err))
	ctx.AbortWithStatus(http.StatusUnauthorized)
}

func tokenFromHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
