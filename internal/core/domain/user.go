package domain

import "time"

// User models a registered account. Users own every other entity, directly
// or through one of their products.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
