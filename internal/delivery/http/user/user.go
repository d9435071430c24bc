package http_user

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
	usecase_user "github.com/blogforge/core/internal/usecase/user"
)

type UserService interface {
	All(ctx context.Context) ([]model.User, error)
	ByID(ctx context.Context, rawID string) (model.User, error)
	Rename(ctx context.Context, rawID string, name string) error
}

// LocalRegistrar opens an account from submitted credentials instead of an
// OAuth exchange.
type LocalRegistrar interface {
	RegisterLocal(ctx context.Context, name, email, password string) (model.User, model.Session, error)
}

type Controller struct {
	users     UserService
	registrar LocalRegistrar
	logger    *slog.Logger
}

func New(
	users UserService,
	registrar LocalRegistrar,
) *Controller {
	return &Controller{
		users:     users,
		registrar: registrar,
		logger:    slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/users", c.all)
	router.GET("/user/:id", c.byID)
	router.POST("/user/insert", c.insert)
	router.PUT("/user/update/:id", c.update)
	router.GET("/privacy", c.privacy)
	router.GET("/tos", c.tos)
}

type GetUserDTO struct {
	UUID  string `json:"uuid" example:"8a6e0804-2bd0-4672-b79d-d97027f9071a"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
}

type InsertUserRequestDTO struct {
	Name     string `form:"name" binding:"required" example:"Alice"`
	Email    string `form:"email" binding:"required" example:"alice@example.com"`
	Password string `form:"password" binding:"required" example:"secret"`
}

type UpdateUserRequestDTO struct {
	Name string `json:"name" binding:"required" example:"Alice"`
}

// all lists users
// @Summary List users
// @Tags User operations
// @Produce json
// @Success 200 {array} GetUserDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /users [get]
func (c *Controller) all(ctx *gin.Context) {
	users, err := c.users.All(ctx.Request.Context())
	if err != nil {
		c.logger.Error("list users failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]GetUserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, GetUserDTO{
			UUID:  u.UUID.String(),
			Name:  u.Name,
			Email: u.Email,
		})
	}

	ctx.JSON(http.StatusOK, dtos)
}

// byID fetches one user
// @Summary Get user by id
// @Tags User operations
// @Produce json
// @Param id path string true "User UUID"
// @Success 200 {object} GetUserDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed UUID"
// @Failure 404 {object} http_common.ErrorResponse "User not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /user/{id} [get]
func (c *Controller) byID(ctx *gin.Context) {
	user, err := c.users.ByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase_user.ErrMalformedUserID):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid UUID format",
			})
		case errors.Is(err, usecase_user.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "User not found",
			})
		default:
			c.logger.Error("get user failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, GetUserDTO{
		UUID:  user.UUID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

// insert registers a local account
// @Summary Register with credentials
// @Description Creates the user, opens a session and sets the session cookie in one step
// @Tags User operations
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Display name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 201 {object} GetUserDTO
// @Failure 400 {object} http_common.ErrorResponse "Invalid form or email already registered"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /user/insert [post]
func (c *Controller) insert(ctx *gin.Context) {
	var req InsertUserRequestDTO

	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	user, session, err := c.registrar.RegisterLocal(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase_auth.ErrEmailTaken) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Email already registered.",
			})
			return
		}
		c.logger.Error("local registration failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	http_cookie.Set(ctx.Writer, session.SessionID.String())
	ctx.JSON(http.StatusCreated, GetUserDTO{
		UUID:  user.UUID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

// update renames a user
// @Summary Update user name
// @Tags User operations
// @Accept json
// @Param id path string true "User UUID"
// @Param request body UpdateUserRequestDTO true "New name"
// @Success 202 "Updated"
// @Failure 400 {object} http_common.ErrorResponse "Malformed UUID or body"
// @Failure 404 {object} http_common.ErrorResponse "User not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /user/update/{id} [put]
func (c *Controller) update(ctx *gin.Context) {
	var req UpdateUserRequestDTO

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	if err := c.users.Rename(ctx.Request.Context(), ctx.Param("id"), req.Name); err != nil {
		switch {
		case errors.Is(err, usecase_user.ErrMalformedUserID):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid UUID format",
			})
		case errors.Is(err, usecase_user.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Message: "User not found",
			})
		default:
			c.logger.Error("update user failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.String(http.StatusAccepted, "Updated")
}

func (c *Controller) privacy(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Privacy Policy")
}

func (c *Controller) tos(ctx *gin.Context) {
	ctx.String(http.StatusOK, "TOS")
}
