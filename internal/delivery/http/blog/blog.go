package http_blog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/blogforge/core/internal/delivery/http/common"
	"github.com/blogforge/core/internal/model"
	usecase_blog "github.com/blogforge/core/internal/usecase/blog"
)

type BlogService interface {
	Create(ctx context.Context, title, content string, rawUserID string) (model.Blog, error)
	ByID(ctx context.Context, id int) (model.Blog, error)
	All(ctx context.Context) ([]model.Blog, error)
	AllByUser(ctx context.Context, rawUserID string) ([]model.Blog, error)
	Update(ctx context.Context, id int, title, content string) error
	Delete(ctx context.Context, id int) error
}

type Controller struct {
	blogs  BlogService
	logger *slog.Logger
}

func New(blogs BlogService) *Controller {
	return &Controller{
		blogs:  blogs,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/blog/insert", c.insert)
	router.GET("/blog/:id", c.byID)
	router.PUT("/blog/update/:id", c.update)
	router.DELETE("/blog/delete/:id", c.delete)
	router.GET("/blogs", c.all)
	router.GET("/blogs/user/:id", c.allByUser)
}

type InsertBlogRequestDTO struct {
	Title   string `json:"title" binding:"required" example:"First post"`
	Content string `json:"content" binding:"required" example:"Hello world"`
	UserID  string `json:"user_id" binding:"required" example:"8a6e0804-2bd0-4672-b79d-d97027f9071a"`
}

type UpdateBlogRequestDTO struct {
	Title   string `json:"title" binding:"required" example:"First post"`
	Content string `json:"content" binding:"required" example:"Hello world"`
}

type GetBlogDTO struct {
	ID        int       `json:"id" example:"1"`
	Title     string    `json:"title" example:"First post"`
	Content   string    `json:"content" example:"Hello world"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id" example:"8a6e0804-2bd0-4672-b79d-d97027f9071a"`
}

func toDTO(blog model.Blog) GetBlogDTO {
	return GetBlogDTO{
		ID:        blog.ID,
		Title:     blog.Title,
		Content:   blog.Content,
		Images:    blog.Images,
		CreatedAt: blog.CreatedAt,
		UserID:    blog.UserID.String(),
	}
}

// insert creates a blog
// @Summary Create blog
// @Description Inserts a blog after verifying its owner exists
// @Tags Blog operations
// @Accept json
// @Produce json
// @Param request body InsertBlogRequestDTO true "Blog payload"
// @Success 201 {object} GetBlogDTO
// @Failure 400 {object} http_common.ErrorResponse "Invalid body or malformed UUID"
// @Failure 403 {object} http_common.ErrorResponse "Owner does not exist"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /blog/insert [post]
func (c *Controller) insert(ctx *gin.Context) {
	var req InsertBlogRequestDTO

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	blog, err := c.blogs.Create(ctx.Request.Context(), req.Title, req.Content, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, usecase_blog.ErrMalformedUserID):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid UUID format",
			})
		case errors.Is(err, usecase_blog.ErrOwnerNotFound):
			ctx.JSON(http.StatusForbidden, http_common.ErrorResponse{
				Message: "You have no rights",
			})
		default:
			c.logger.Error("create blog failed", slog.String("error", err.Error()))
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Message: "internal error",
			})
		}
		return
	}

	ctx.JSON(http.StatusCreated, toDTO(blog))
}

// byID fetches one blog
// @Summary Get blog by id
// @Tags Blog operations
// @Produce json
// @Param id path int true "Blog id"
// @Success 200 {object} GetBlogDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed id"
// @Failure 404 {object} http_common.ErrorResponse "Blog not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /blog/{id} [get]
func (c *Controller) byID(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	blog, err := c.blogs.ByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondBlogError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toDTO(blog))
}

// all lists blogs
// @Summary List blogs
// @Tags Blog operations
// @Produce json
// @Success 200 {array} GetBlogDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /blogs [get]
func (c *Controller) all(ctx *gin.Context) {
	blogs, err := c.blogs.All(ctx.Request.Context())
	if err != nil {
		c.logger.Error("list blogs failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]GetBlogDTO, 0, len(blogs))
	for _, b := range blogs {
		dtos = append(dtos, toDTO(b))
	}

	ctx.JSON(http.StatusOK, dtos)
}

// allByUser lists one author's blogs
// @Summary List blogs by author
// @Tags Blog operations
// @Produce json
// @Param id path string true "Author UUID"
// @Success 200 {array} GetBlogDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed UUID"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /blogs/user/{id} [get]
func (c *Controller) allByUser(ctx *gin.Context) {
	blogs, err := c.blogs.AllByUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, usecase_blog.ErrMalformedUserID) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid UUID format",
			})
			return
		}
		c.logger.Error("list user blogs failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	dtos := make([]GetBlogDTO, 0, len(blogs))
	for _, b := range blogs {
		dtos = append(dtos, toDTO(b))
	}

	ctx.JSON(http.StatusOK, dtos)
}

// update rewrites a blog's title and content
// @Summary Update blog
// @Tags Blog operations
// @Accept json
// @Param id path int true "Blog id"
// @Param request body UpdateBlogRequestDTO true "New title and content"
// @Success 202 "Updated"
// @Failure 400 {object} http_common.ErrorResponse "Malformed id or body"
// @Failure 404 {object} http_common.ErrorResponse "Blog not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /blog/update/{id} [put]
func (c *Controller) update(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	var req UpdateBlogRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	if err := c.blogs.Update(ctx.Request.Context(), id, req.Title, req.Content); err != nil {
		c.respondBlogError(ctx, err)
		return
	}

	ctx.String(http.StatusAccepted, "Updated")
}

// delete removes a blog
// @Summary Delete blog
// @Tags Blog operations
// @Param id path int true "Blog id"
// @Success 202 "Deleted"
// @Failure 400 {object} http_common.ErrorResponse "Malformed id"
// @Failure 404 {object} http_common.ErrorResponse "Blog not found"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /blog/delete/{id} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	id, ok := c.parseID(ctx)
	if !ok {
		return
	}

	if err := c.blogs.Delete(ctx.Request.Context(), id); err != nil {
		c.respondBlogError(ctx, err)
		return
	}

	ctx.String(http.StatusAccepted, "Deleted")
}

func (c *Controller) parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid blog id",
		})
		return 0, false
	}
	return id, true
}

func (c *Controller) respondBlogError(ctx *gin.Context, err error) {
	if errors.Is(err, usecase_blog.ErrBlogNotFound) {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Message: "Blog not found",
		})
		return
	}
	c.logger.Error("blog operation failed", slog.String("error", err.Error()))
	ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
		Message: "internal error",
	})
}
