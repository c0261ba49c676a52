package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/laptopmundo/catalog-backend/pkg/e"
)

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста.
// Возвращает e.ErrTransactionNotFound, если репозиторий вызван вне транзакции.
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value("tx")
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
