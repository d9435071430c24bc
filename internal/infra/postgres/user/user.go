package infra_postgres_user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/blogforge/core/internal/model"
	usecase_auth "github.com/blogforge/core/internal/usecase/auth"
	usecase_user "github.com/blogforge/core/internal/usecase/user"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// Driver serves both the auth flows (ByEmail/Insert) and the user CRUD
// (All/ByUUID/UpdateName), mapping row absence to the owning usecase's error.
type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	UUID     uuid.UUID `db:"uuid"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Password string    `db:"password"`
}

func (dto userDTO) toModel() model.User {
	return model.User(dto)
}

func (d *Driver) Insert(ctx context.Context, user model.User) error {
	dto := userDTO(user)

	query := `
		INSERT INTO users (uuid, name, email, password)
		VALUES (:uuid, :name, :email, :password)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return usecase_auth.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (d *Driver) ByEmail(ctx context.Context, email string) (model.User, error) {
	var dto userDTO

	query := `
        SELECT uuid, name, email, password
        FROM users
        WHERE email = $1
    `

	err := d.db.GetContext(ctx, &dto, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, usecase_auth.ErrUserNotFound
		}
		return model.User{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) ByUUID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var dto userDTO

	query := `
        SELECT uuid, name, email, password
        FROM users
        WHERE uuid = $1
    `

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, usecase_user.ErrUserNotFound
		}
		return model.User{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) All(ctx context.Context) ([]model.User, error) {
	var dtos []userDTO

	query := `
        SELECT uuid, name, email, password
        FROM users
    `

	if err := d.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, dto.toModel())
	}
	return users, nil
}

func (d *Driver) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query := `
        UPDATE users
        SET name = $1
        WHERE uuid = $2
    `

	result, err := d.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return usecase_user.ErrUserNotFound
	}

	return nil
}

func (d *Driver) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE uuid = $1)`

	var exists bool
	if err := d.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}
