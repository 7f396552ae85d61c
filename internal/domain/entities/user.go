package entities

import (
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/valueobjects"
)

// Role representa o papel de um usuário da área administrativa
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// User representa um usuário da área administrativa
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
