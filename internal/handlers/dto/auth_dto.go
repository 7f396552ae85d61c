package dto

import (
	"time"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

// LoginRequest representa a requisição de login da área administrativa
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse representa um usuário administrativo na API.
// O hash de senha nunca sai daqui.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse acompanha o Set-Cookie da sessão
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
