package infra_pg_init

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/blogforge/core/internal/config"
)

func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	return db
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	uuid     UUID PRIMARY KEY,
	name     TEXT NOT NULL,
	email    TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS blogs (
	id         SERIAL PRIMARY KEY,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	images     TEXT[],
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	user_id    UUID NOT NULL REFERENCES users (uuid)
);

CREATE TABLE IF NOT EXISTS sessions (
	session_id    UUID PRIMARY KEY,
	access_token  TEXT NOT NULL UNIQUE,
	refresh_token TEXT NOT NULL DEFAULT '',
	data          TEXT,
	expires_at    TIMESTAMPTZ NOT NULL,
	csrf_token    TEXT NOT NULL UNIQUE,
	user_id       UUID NOT NULL REFERENCES users (uuid)
);
`

// MustMigrate bootstraps the schema on startup. Statements are idempotent so
// a restart against an existing database is a no-op.
func MustMigrate(db *sqlx.DB) {
	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}
}
