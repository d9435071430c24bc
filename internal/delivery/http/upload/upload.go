package http_upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	http_common "github.com/blogforge/core/internal/delivery/http/common"
	usecase_upload "github.com/blogforge/core/internal/usecase/upload"
)

const (
	// maxUploadBytes caps the whole multipart body.
	maxUploadBytes = 10 << 20

	// uploadTimeout bounds the slowest acceptable batch of puts.
	uploadTimeout = 2 * time.Minute
)

type UploadService interface {
	Store(ctx context.Context, files []usecase_upload.File) []usecase_upload.Result
	Remove(ctx context.Context, key string) error
	ShareURL(ctx context.Context, key string) (string, error)
}

type Controller struct {
	uploads UploadService
	logger  *slog.Logger
}

func New(uploads UploadService) *Controller {
	return &Controller{
		uploads: uploads,
		logger:  slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/upload", c.upload)
	router.DELETE("/upload/delete/:key", c.delete)
	router.GET("/upload/share/:key", c.share)
}

type UploadResultDTO struct {
	Key         string `json:"key" example:"8a6e0804-2bd0-4672-b79d-d97027f9071a"`
	Successful  bool   `json:"successful" example:"true"`
	URL         string `json:"url" example:"https://bucket.s3.amazonaws.com/key"`
	FileName    string `json:"file_name" example:"cat.png"`
	ContentType string `json:"content_type" example:"image/png"`
}

// upload stores files in the object bucket
// @Summary Upload files
// @Description Accepts a multipart form with a "files" field and stores each part under a fresh key. A failed part is reported per file instead of failing the batch.
// @Tags Upload operations
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to store"
// @Success 200 {array} UploadResultDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed multipart body or no files"
// @Failure 413 {object} http_common.ErrorResponse "Body exceeds the 10 MiB limit"
// @Router /upload [post]
func (c *Controller) upload(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx.Request.Context(), uploadTimeout)
	defer cancel()

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadBytes)

	form, err := ctx.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, http_common.ErrorResponse{
				Message: "Upload exceeds size limit",
			})
			return
		}
		c.logger.Warn("invalid multipart body", "error", err)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "Invalid request format",
		})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "No files provided",
		})
		return
	}

	files := make([]usecase_upload.File, 0, len(headers))
	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			c.logger.Warn("unreadable multipart file", slog.String("name", header.Filename), "error", err)
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid request format",
			})
			return
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			c.logger.Warn("unreadable multipart file", slog.String("name", header.Filename), "error", err)
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "Invalid request format",
			})
			return
		}

		files = append(files, usecase_upload.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	results := c.uploads.Store(reqCtx, files)

	dtos := make([]UploadResultDTO, 0, len(results))
	for _, r := range results {
		dtos = append(dtos, UploadResultDTO{
			Key:         r.Key,
			Successful:  r.Successful,
			URL:         r.URL,
			FileName:    r.FileName,
			ContentType: r.ContentType,
		})
	}

	ctx.JSON(http.StatusOK, dtos)
}

type ShareURLDTO struct {
	URL string `json:"url" example:"https://bucket.s3.amazonaws.com/key?X-Amz-Signature=..."`
}

// delete removes a stored file
// @Summary Delete uploaded file
// @Tags Upload operations
// @Param key path string true "Object key"
// @Success 202 "Deleted"
// @Failure 500 {object} http_common.ErrorResponse "Storage failure"
// @Router /upload/delete/{key} [delete]
func (c *Controller) delete(ctx *gin.Context) {
	if err := c.uploads.Remove(ctx.Request.Context(), ctx.Param("key")); err != nil {
		c.logger.Error("delete upload failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.String(http.StatusAccepted, "Deleted")
}

// share returns a time-limited link to a stored file
// @Summary Share uploaded file
// @Tags Upload operations
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} ShareURLDTO
// @Failure 500 {object} http_common.ErrorResponse "Storage failure"
// @Router /upload/share/{key} [get]
func (c *Controller) share(ctx *gin.Context) {
	url, err := c.uploads.ShareURL(ctx.Request.Context(), ctx.Param("key"))
	if err != nil {
		c.logger.Error("share upload failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Message: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, ShareURLDTO{URL: url})
}
