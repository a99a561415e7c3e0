package models

import "time"

// User represents an operator account stored on the server.
// PasswordHash is a bcrypt hash; the plaintext password never leaves
// the signin/register handlers.
type User struct {
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
}
