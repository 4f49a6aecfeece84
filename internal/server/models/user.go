package models

import "time"

// User is an account. The password is stored as an argon2id hash together
// with its salt.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
}
