package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"nombre_completo"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
}
