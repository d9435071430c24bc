package http_auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	http_common "github.com/blogforge/core/internal/delivery/http/common"
	http_cookie "github.com/blogforge/core/internal/delivery/http/cookie"
	"github.com/blogforge/core/internal/model"
	usecase_auth "github.com/blogforge/core/internal/usecase/auth"
	usecase_session "github.com/blogforge/core/internal/usecase/session"
)

// dashboardRedirectPage is served after a successful callback. The browser
// commits the Set-Cookie from this response, then follows the refresh.
const dashboardRedirectPage = `<html><head><meta http-equiv="refresh" content="0; url=/dashboard" /></head><body>Redirecting to dashboard...</body></html>`

const dashboardPage = `<html><body><h1>Dashboard</h1><form action="/logout" method="get"><button type="submit">Logout</button></form></body></html>`

type AuthService interface {
	LoginURL() (string, string)
	SignOnURL() (string, string)
	Login(ctx context.Context, code, state string) (model.Session, error)
	SignOn(ctx context.Context, code, state string) (model.User, model.Session, error)
}

type SessionService interface {
	HasActive(ctx context.Context, raw string) (bool, error)
	Logout(ctx context.Context, raw string) error
}

type Controller struct {
	auth     AuthService
	sessions SessionService
	gate     gin.HandlerFunc
	logger   *slog.Logger
}

func New(
	auth AuthService,
	sessions SessionService,
	gate gin.HandlerFunc,
) *Controller {
	return &Controller{
		auth:     auth,
		sessions: sessions,
		gate:     gate,
		logger:   slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/auth", c.login)
	router.GET("/redirect", c.redirect)
	router.GET("/auth_sign_on", c.authSignOn)
	router.GET("/register_redirect", c.registerRedirect)
	router.GET("/logout", c.logout)
	router.GET("/dashboard", c.gate, c.dashboard)
	router.GET("/login", c.loginPage)
}

// login starts the login flow
// @Summary Start OAuth login
// @Description Redirects to the provider's consent page, or straight to the dashboard when the caller already holds a live session
// @Tags Auth operations
// @Produce html
// @Success 307 "Active session redirected to /dashboard, otherwise to the OAuth consent page"
// @Failure 400 {object} http_common.ErrorResponse "Malformed session cookie"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /auth [get]
func (c *Controller) login(ctx *gin.Context) {
	if raw, err := ctx.Cookie(http_cookie.Name); err == nil && raw != "" {
		active, err := c.sessions.HasActive(ctx.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, usecase_session.ErrMalformedSessionID) {
				ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
					Message: "Invalid session ID format.",
				})
				return
			}
			c.logger.Error("session lookup failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			return
		}
		if active {
			ctx.Redirect(http.StatusTemporaryRedirect, "/dashboard")
			return
		}
	}

	url, _ := c.auth.LoginURL()
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// redirect finishes the login flow
// @Summary OAuth login callback
// @Description Exchanges the authorization code, opens a session and hands the browser a refresh page pointing at the dashboard
// @Tags Auth operations
// @Produce html
// @Param state query string true "CSRF state echoed by the provider"
// @Param code query string true "Authorization code"
// @Success 200 "Session cookie set, refresh page served"
// @Failure 400 {object} http_common.ErrorResponse "Missing CSRF token or code"
// @Failure 401 {object} http_common.ErrorResponse "Email is not verified"
// @Failure 404 {object} http_common.ErrorResponse "No account for this email"
// @Failure 502 {object} http_common.ErrorResponse "Provider exchange failed"
// @Router /redirect [get]
func (c *Controller) redirect(ctx *gin.Context) {
	state := ctx.Query("state")
	if state == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Missing CSRF token",
		})
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Missing code",
		})
		return
	}

	session, err := c.auth.Login(ctx.Request.Context(), code, state)
	if err != nil {
		c.respondLoginError(ctx, err)
		return
	}

	http_cookie.Set(ctx.Writer, session.SessionID.String())
	ctx.Header("Authorization", "Bearer "+session.AccessToken)
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardRedirectPage))
}

// authSignOn starts the registration flow
// @Summary Start OAuth registration
// @Description Redirects to the provider's consent page with the sign-on callback
// @Tags Auth operations
// @Success 307 "Redirected to the OAuth consent page"
// @Router /auth_sign_on [get]
func (c *Controller) authSignOn(ctx *gin.Context) {
	url, _ := c.auth.SignOnURL()
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}

// registerRedirect finishes the registration flow
// @Summary OAuth registration callback
// @Description Exchanges the code, inserts the user and opens a session
// @Tags Auth operations
// @Produce html
// @Param state query string true "CSRF state echoed by the provider"
// @Param code query string true "Authorization code"
// @Success 200 "User created, session cookie set"
// @Failure 400 {object} http_common.ErrorResponse "Missing CSRF token, missing code or email already registered"
// @Failure 401 {object} http_common.ErrorResponse "Email is not verified"
// @Failure 502 {object} http_common.ErrorResponse "Provider exchange failed"
// @Router /register_redirect [get]
func (c *Controller) registerRedirect(ctx *gin.Context) {
	state := ctx.Query("state")
	if state == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Missing CSRF token",
		})
		return
	}

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Missing code",
		})
		return
	}

	_, session, err := c.auth.SignOn(ctx.Request.Context(), code, state)
	if err != nil {
		if errors.Is(err, usecase_auth.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Email already registered.",
			})
			return
		}
		c.respondLoginError(ctx, err)
		return
	}

	http_cookie.Set(ctx.Writer, session.SessionID.String())
	ctx.Header("Authorization", "Bearer "+session.AccessToken)
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardRedirectPage))
}

// logout closes the session
// @Summary Logout
// @Description Deletes the session everywhere it is tracked, clears the cookie and sends the browser to the login page. Safe to repeat.
// @Tags Auth operations
// @Success 307 "Redirected to /login"
// @Failure 400 {object} http_common.ErrorResponse "Malformed session cookie"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /logout [get]
func (c *Controller) logout(ctx *gin.Context) {
	if raw, err := ctx.Cookie(http_cookie.Name); err == nil && raw != "" {
		if err := c.sessions.Logout(ctx.Request.Context(), raw); err != nil {
			if errors.Is(err, usecase_session.ErrMalformedSessionID) {
				ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
					Message: "Invalid session ID format.",
				})
				return
			}
			c.logger.Error("logout failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
			return
		}
	}

	http_cookie.Clear(ctx.Writer)
	ctx.Redirect(http.StatusTemporaryRedirect, "/login")
}

// dashboard serves the landing page behind the session gate
// @Summary Dashboard
// @Tags Auth operations
// @Produce html
// @Success 200 "Dashboard page"
// @Router /dashboard [get]
func (c *Controller) dashboard(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardPage))
}

// loginPage serves the login stub
// @Summary Login page
// @Tags Auth operations
// @Success 200 "Login page"
// @Router /login [get]
func (c *Controller) loginPage(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Login Page")
}

func (c *Controller) respondLoginError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase_auth.ErrEmailNotVerified):
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
			Message: "Email is not verified.",
		})
	case errors.Is(err, usecase_auth.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "User not found",
		})
	case errors.Is(err, usecase_auth.ErrExchangeFailed),
		errors.Is(err, usecase_auth.ErrUserInfoFetch),
		errors.Is(err, usecase_auth.ErrUserInfoParse):
		c.logger.Warn("provider exchange failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadGateway, http_common.ErrorResponse{
			Message: "Authentication provider failure.",
		})
	default:
		c.logger.Error("auth callback failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
	}
}
