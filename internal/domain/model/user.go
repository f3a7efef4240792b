package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that owns resources and performs actions.
// Password and RefreshToken are credential fields and must never be exposed
// through any listing or feed; see PublicProfile.
type User struct {
	ID           uuid.UUID
	Username     string
	FullName     string
	Email        string
	AvatarURL    string
	Password     string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the owner shape embedded in enriched feed records.
// It carries only fields safe to expose to any caller.
type PublicUser struct {
	ID        uuid.UUID
	Username  string
	FullName  string
	AvatarURL string
}

// PublicProfile strips credential fields from a user.
func (u *User) PublicProfile() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		AvatarURL: u.AvatarURL,
	}
}
