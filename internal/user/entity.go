// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	StoreID      *string   `db:"store_id"`
	Plan         string    `db:"plan"`
	TokenVersion int       `db:"token_version"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) OwnsStore() bool {
	return u.Role == RoleStore && u.StoreID != nil
}

const (
	RoleStore = "store"
	RoleAdmin = "admin"
)
