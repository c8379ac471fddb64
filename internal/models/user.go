package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`
	ID            string    `bun:"id,pk" json:"id"`
	Username      string    `bun:"username,notnull" json:"username"`
	Password      string    `bun:"password,notnull" json:"-"`
	Name          string    `bun:"name,notnull" json:"name"`
	Role          Role      `bun:"role,notnull" json:"role"`
	Avatar        *string   `bun:"avatar" json:"avatar"`
	CreatedAt     time.Time `bun:"created_at,notnull" json:"createdAt"`
}

// UserFromAuth only use in middleware
type UserFromAuth struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

func (u *User) IsMaster() bool {
	return u.Role == RoleMaster
}
