package entity

import (
	"time"
)

// User is the aggregate root for the user domain. Avatar holds the
// content-addressed filename of the stored profile image and is nil until
// an upload happens.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	Email     string    `json:"email"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
