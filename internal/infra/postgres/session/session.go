package infra_postgres_session

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/blogforge/core/internal/model"
	usecase_session "github.com/blogforge/core/internal/usecase/session"
)

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

type sessionDTO struct {
	SessionID    uuid.UUID      `db:"session_id"`
	AccessToken  string         `db:"access_token"`
	RefreshToken string         `db:"refresh_token"`
	Data         sql.NullString `db:"data"`
	ExpiresAt    time.Time      `db:"expires_at"`
	CSRFToken    string         `db:"csrf_token"`
	UserID       uuid.UUID      `db:"user_id"`
}

func (dto sessionDTO) toModel() model.Session {
	return model.Session{
		SessionID:    dto.SessionID,
		AccessToken:  dto.AccessToken,
		RefreshToken: dto.RefreshToken,
		Data:         dto.Data.String,
		ExpiresAt:    dto.ExpiresAt,
		CSRFToken:    dto.CSRFToken,
		UserID:       dto.UserID,
	}
}

func (d *Driver) Insert(ctx context.Context, session model.Session) error {
	dto := sessionDTO{
		SessionID:    session.SessionID,
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		Data:         sql.NullString{String: session.Data, Valid: session.Data != ""},
		ExpiresAt:    session.ExpiresAt,
		CSRFToken:    session.CSRFToken,
		UserID:       session.UserID,
	}

	query := `
		INSERT INTO sessions (session_id, access_token, refresh_token, data, expires_at, csrf_token, user_id)
		VALUES (:session_id, :access_token, :refresh_token, :data, :expires_at, :csrf_token, :user_id)
	`

	_, err := d.db.NamedExecContext(ctx, query, dto)
	return err
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	var dto sessionDTO

	query := `
        SELECT session_id, access_token, refresh_token, data, expires_at, csrf_token, user_id
        FROM sessions
        WHERE session_id = $1
    `

	err := d.db.GetContext(ctx, &dto, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Session{}, usecase_session.ErrSessionNotFound
		}
		return model.Session{}, err
	}

	return dto.toModel(), nil
}

func (d *Driver) DeleteByID(ctx context.Context, id uuid.UUID) error {
	query := `
        DELETE FROM sessions
        WHERE session_id = $1
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
		return usecase_session.ErrSessionNotFound
	}

	return nil
}
