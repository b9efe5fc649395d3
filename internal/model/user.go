package model

import "time"

type Role int

const (
	RoleClient Role = 0
	RoleAdmin  Role = 1
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	RoleID       Role      `json:"roleId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the shape returned by auth and admin endpoints.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	RoleID   Role   `json:"roleId"`
}

func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, RoleID: u.RoleID}
}

// AuthClaims is the verified content of the session token.
type AuthClaims struct {
	UserID   int64
	Username string
	RoleID   Role
}
