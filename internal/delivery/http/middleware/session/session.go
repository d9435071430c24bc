package http_session_middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/blogforge/core/internal/delivery/http/common"
	http_cookie "github.com/blogforge/core/internal/delivery/http/cookie"
	"github.com/blogforge/core/internal/model"
	usecase_session "github.com/blogforge/core/internal/usecase/session"
)

// UserIDKey is where the gate leaves the authenticated user's id for handlers
// further down the chain.
const UserIDKey = "user_id"

type SessionValidator interface {
	Validate(ctx context.Context, raw string) (model.Session, error)
}

type Middleware struct {
	sessions SessionValidator
	logger   *slog.Logger
}

func New(sessions SessionValidator) *Middleware {
	return &Middleware{
		sessions: sessions,
		logger:   slog.Default(),
	}
}

// Gate validates the session cookie before the handler runs.
//
// A request without the cookie passes through unauthenticated; whether a
// route tolerates anonymous access is the route's decision, not the gate's.
// A malformed cookie is a client error and never touches the stores. A
// missing or expired session short-circuits with 401 and a cookie-clearing
// response so the browser stops replaying a dead id.
func (m *Middleware) Gate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw, err := ctx.Cookie(http_cookie.Name)
		if err != nil || raw == "" {
			ctx.Next()
			return
		}

		session, err := m.sessions.Validate(ctx.Request.Context(), raw)
		if err != nil {
			switch {
			case errors.Is(err, usecase_session.ErrMalformedSessionID):
				ctx.AbortWithStatusJSON(http.StatusBadRequest, http_common.ErrorResponse{
					Message: "Invalid session ID format.",
				})
			case errors.Is(err, usecase_session.ErrSessionNotFound),
				errors.Is(err, usecase_session.ErrSessionExpired):
				http_cookie.Clear(ctx.Writer)
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Message: "Session expired.",
				})
			default:
				m.logger.Error("session gate failure", "error", err.Error())
				ctx.AbortWithStatus(http.StatusInternalServerError)
			}
			return
		}

		ctx.Set(UserIDKey, session.UserID.String())
		ctx.Next()
	}
}
