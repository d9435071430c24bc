package model

import "github.com/google/uuid"

type User struct {
	UUID     uuid.UUID
	Name     string
	Email    string
	Password string
}

// UserInfo is the profile Google returns for an access token.
type UserInfo struct {
	Name          string
	Email         string
	VerifiedEmail bool
}
