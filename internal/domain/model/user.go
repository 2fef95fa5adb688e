package model

import "time"

// User represents a registered account. Email is the login identifier and is
// unique across all users; the plaintext password is never stored anywhere.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     *string
	CreatedAt    time.Time
}
