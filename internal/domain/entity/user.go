package entity

import "time"

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt, nunca texto plano
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
