package pgrepo

import (
	"context"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

const transactionColumns = "id, created_at, card_id, name, amount, type"

// CreateTransaction вставляет неизменяемую запись журнала. Метка времени назначается сервером.
// Знак amount - зона ответственности вызывающего, репозиторий его не пересчитывает.
func (r *TransactionRepository) CreateTransaction(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO transactions (card_id, name, amount, type)
		VALUES ($1, $2, $3, $4)
		RETURNING `+transactionColumns,
		args.CardID, args.Name, args.Amount, string(args.Type))

	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction for card %d", args.CardID)
	}
	return transaction, nil
}

// GetByCardIDs возвращает транзакции указанных карт, новые сверху.
func (r *TransactionRepository) GetByCardIDs(ctx context.Context, cardIDs []int64) ([]domain.Transaction, error) {
	if len(cardIDs) == 0 {
		return nil, nil
	}
	rows, err := r.conn.Query(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions
		WHERE card_id = ANY($1)
		ORDER BY created_at DESC, id DESC`, cardIDs)
	if err != nil {
		return nil, convertErr(err, "finding transactions by card ids")
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transactions")
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding transactions by card ids")
	}
	return transactions, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var transactionType string
	err := row.Scan(
		&transaction.ID, &transaction.CreatedAt, &transaction.CardID,
		&transaction.Name, &transaction.Amount, &transactionType,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	transaction.Type = domain.TransactionType(transactionType)
	return &transaction, nil
}
