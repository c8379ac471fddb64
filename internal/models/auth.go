package models

import (
	"time"

	"github.com/uptrace/bun"
)

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=6"`
	Name     string  `json:"name" validate:"required"`
	Role     Role    `json:"role" validate:"omitempty,enum"`
	Avatar   *string `json:"avatar"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RevokedToken blocks a signed-out token until it expires.
type RevokedToken struct {
	bun.BaseModel `bun:"table:revoked_tokens"`
	ID            string    `bun:"id,pk"`
	ExpiresAt     time.Time `bun:"expires_at,notnull"`
}
