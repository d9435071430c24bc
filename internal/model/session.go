package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind the session_id cookie.
// The cookie carries only the SessionID; everything else stays here.
type Session struct {
	SessionID    uuid.UUID
	AccessToken  string
	RefreshToken string
	Data         string
	ExpiresAt    time.Time
	CSRFToken    string
	UserID       uuid.UUID
}

func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
