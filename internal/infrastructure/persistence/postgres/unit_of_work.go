package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/gmagencia/gmfaces-backend/internal/domain/ports"
)

// contextKey evita colisões de chaves no contexto
type contextKey string

const txKey contextKey = "tx"

// getDB extrai a transação do contexto, se houver; senão usa a conexão base
func getDB(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return base
}

// UnitOfWork implementa ports.UnitOfWork sobre transações GORM
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork cria um novo UnitOfWork
func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

// WithTransaction executa fn dentro de uma transação. Qualquer erro de fn
// desfaz todas as escritas feitas pelos repositórios com o contexto retornado.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
