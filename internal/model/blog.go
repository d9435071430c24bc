package model

import (
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID        int
	Title     string
	Content   string
	Images    []string
	CreatedAt time.Time
	UserID    uuid.UUID
}
