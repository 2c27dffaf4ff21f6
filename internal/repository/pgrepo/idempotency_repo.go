package pgrepo

import (
	"context"

	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

type IdempotencyRepository struct {
	conn uow.DBTX
}

func NewIdempotencyRepository(conn uow.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{conn: conn}
}

// RegisterKey фиксирует ключ идемпотентности в той же транзакции, что и мутация баланса.
// Повторная вставка ключа возвращает ErrDuplicateKey.
func (r *IdempotencyRepository) RegisterKey(ctx context.Context, args repoargs.RegisterIdempotencyKey) error {
	_, err := r.conn.Exec(ctx, `
		INSERT INTO idempotency_keys (key, card_id, operation)
		VALUES ($1, $2, $3)`,
		args.Key, args.CardID, args.Operation)
	if err != nil {
		return convertErr(err, "registering idempotency key `%s`", args.Key)
	}
	return nil
}
