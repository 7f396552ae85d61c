package repositories

import (
	"context"

	"github.com/gmagencia/gmfaces-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários administrativos
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	Count(ctx context.Context) (int64, error)
}
