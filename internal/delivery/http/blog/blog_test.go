package http_blog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/blogforge/core/internal/model"
	usecase_blog "github.com/blogforge/core/internal/usecase/blog"
)

type blogServiceStub struct {
	blog  model.Blog
	blogs []model.Blog
	err   error
}

func (s *blogServiceStub) Create(_ context.Context, title, content string, rawUserID string) (model.Blog, error) {
	if s.err != nil {
		return model.Blog{}, s.err
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return model.Blog{}, usecase_blog.ErrMalformedUserID
	}
	return model.Blog{ID: 1, Title: title, Content: content, UserID: userID}, nil
}

func (s *blogServiceStub) ByID(_ context.Context, _ int) (model.Blog, error) {
	return s.blog, s.err
}

func (s *blogServiceStub) All(_ context.Context) ([]model.Blog, error) {
	return s.blogs, s.err
}

func (s *blogServiceStub) AllByUser(_ context.Context, _ string) ([]model.Blog, error) {
	return s.blogs, s.err
}

func (s *blogServiceStub) Update(_ context.Context, _ int, _, _ string) error { return s.err }
func (s *blogServiceStub) Delete(_ context.Context, _ int) error              { return s.err }

type BlogControllerSuite struct {
	suite.Suite
}

func newBlogRouter(service BlogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(service).RegisterRoutes(router.Group("/"))
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (suite *BlogControllerSuite) TestInsert(t provider.T) {
	t.Parallel()

	t.Run("Should create a blog for an existing owner", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{})
		userID := uuid.New()
		rec := do(router, http.MethodPost, "/blog/insert",
			`{"title":"First post","content":"Hello","user_id":"`+userID.String()+`"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "First post")
		assert.Contains(t, rec.Body.String(), userID.String())
	})

	t.Run("Should answer 403 when the owner does not exist", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{err: usecase_blog.ErrOwnerNotFound})
		rec := do(router, http.MethodPost, "/blog/insert",
			`{"title":"t","content":"c","user_id":"`+uuid.New().String()+`"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "You have no rights")
	})

	t.Run("Should reject a body missing required fields", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{})
		rec := do(router, http.MethodPost, "/blog/insert", `{"title":"t"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (suite *BlogControllerSuite) TestByID(t provider.T) {
	t.Parallel()

	t.Run("Should answer 404 for a missing blog", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{err: usecase_blog.ErrBlogNotFound})
		rec := do(router, http.MethodGet, "/blog/42", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Should reject a non-numeric id before the service runs", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{})
		rec := do(router, http.MethodGet, "/blog/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func (suite *BlogControllerSuite) TestUpdateAndDelete(t provider.T) {
	t.Parallel()

	t.Run("Should confirm an update with 202", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{})
		rec := do(router, http.MethodPut, "/blog/update/1", `{"title":"t","content":"c"}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "Updated", rec.Body.String())
	})

	t.Run("Should confirm a delete with 202", func(t provider.T) {
		router := newBlogRouter(&blogServiceStub{})
		rec := do(router, http.MethodDelete, "/blog/delete/1", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "Deleted", rec.Body.String())
	})
}

func TestBlogControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(BlogControllerSuite))
}
