package infra_postgres_blog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/blogforge/core/internal/model"
	usecase_blog "github.com/blogforge/core/internal/usecase/blog"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type blogDTO struct {
	ID        int            `db:"id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	Images    pq.StringArray `db:"images"`
	CreatedAt time.Time      `db:"created_at"`
	UserID    uuid.UUID      `db:"user_id"`
}

func (dto blogDTO) toModel() model.Blog {
	return model.Blog{
		ID:        dto.ID,
		Title:     dto.Title,
		Content:   dto.Content,
		Images:    dto.Images,
		CreatedAt: dto.CreatedAt,
		UserID:    dto.UserID,
	}
}

func (d *Driver) Insert(ctx context.Context, blog model.Blog) (model.Blog, error) {
	query := `
		INSERT INTO blogs (title, content, images, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	var (
		id        int
		createdAt time.Time
	)
	err := d.db.QueryRowContext(ctx, query,
		blog.Title,
		blog.Content,
		pq.StringArray(blog.Images),
		blog.UserID,
	).Scan(&id, &createdAt)
	if err != nil {
		return model.Blog{}, err
	}

	blog.ID = id
	blog.CreatedAt = createdAt
	return blog, nil
}

func (d *Driver) ByID(ctx context.Context, id int) (model.Blog, error) {
	var dto blogDTO

	query := `
        SELECT id, title, content, images, created_at, user_id
        FROM blogs
        WHERE id = $1
    `

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Blog{}, usecase_blog.ErrBlogNotFound
		}
		return model.Blog{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) All(ctx context.Context) ([]model.Blog, error) {
	var dtos []blogDTO

	query := `
        SELECT id, title, content, images, created_at, user_id
        FROM blogs
    `

	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, err
	}

	return toModels(dtos), nil
}

func (d *Driver) AllByUser(ctx context.Context, userID uuid.UUID) ([]model.Blog, error) {
	var dtos []blogDTO

	query := `
        SELECT id, title, content, images, created_at, user_id
        FROM blogs
        WHERE user_id = $1
    `

	if err := d.db.SelectContext(ctx, &dtos, query, userID); err != nil {
		return nil, err
	}

	return toModels(dtos), nil
}

func (d *Driver) Update(ctx context.Context, id int, title, content string) error {
	query := `
        UPDATE blogs
        SET title = $1, content = $2
        WHERE id = $3
    `

	result, err := d.db.ExecContext(ctx, query, title, content, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_blog.ErrBlogNotFound
	}

	return nil
}

func (d *Driver) DeleteByID(ctx context.Context, id int) error {
	query := `
        DELETE FROM blogs
        WHERE id = $1
    `

	result, err := d.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_blog.ErrBlogNotFound
	}

	return nil
}

func toModels(dtos []blogDTO) []model.Blog {
	blogs := make([]model.Blog, 0, len(dtos))
	for _, dto := range dtos {
		blogs = append(blogs, dto.toModel())
	}
	return blogs
}
