package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

type CardRepository struct {
	conn uow.DBTX
}

func NewCardRepository(conn uow.DBTX) *CardRepository {
	return &CardRepository{conn: conn}
}

const cardColumns = "id, created_at, updated_at, user_id, number, holder, expiry, balance, design"

func (r *CardRepository) CreateCard(ctx context.Context, args repoargs.CreateCard) (*domain.Card, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO cards (user_id, number, holder, expiry, balance, design)
		VALUES ($1, $2, $3, $4, 0, $5)
		RETURNING `+cardColumns,
		args.UserID, args.Number, args.Holder, args.Expiry, args.Design)

	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "creating card")
	}
	return card, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+cardColumns+` FROM cards WHERE id = $1`, id)

	card, err := scanCard(row)
	if err != nil {
		return nil, convertErr(err, "finding card by id %d", id)
	}
	return card, nil
}

// GetByUserID возвращает карты юзера в порядке добавления (по id).
func (r *CardRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error) {
	rows, err := r.conn.Query(ctx, `SELECT `+cardColumns+` FROM cards WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, convertErr(err, "finding cards by user id %d", userID)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		card, scanErr := scanCard(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning cards of user %d", userID)
		}
		cards = append(cards, *card)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding cards by user id %d", userID)
	}
	return cards, nil
}

// ApplyBalanceDelta атомарно применяет дельту к балансу одним условным UPDATE.
// При GuardNonNegative условие `balance + delta >= 0` является частью самого запроса,
// поэтому две конкурентные списывающие операции не могут обе пройти на одном остатке.
// Возвращает ErrNotEnoughBalance при срабатывании условия и ErrRecordNotFound если карты нет.
func (r *CardRepository) ApplyBalanceDelta(
	ctx context.Context,
	args repoargs.ApplyBalanceDelta,
) (*domain.Card, error) {
	query := `
		UPDATE cards SET balance = balance + $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + cardColumns
	if args.Guard == domain.GuardNonNegative {
		query = `
		UPDATE cards SET balance = balance + $1, updated_at = now()
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING ` + cardColumns
	}

	row := r.conn.QueryRow(ctx, query, args.Delta, args.CardID)
	card, err := scanCard(row)
	if err == nil {
		return card, nil
	}

	if args.Guard == domain.GuardNonNegative && errors.Is(err, pgx.ErrNoRows) {
		// условный UPDATE не различает "карты нет" и "не хватило средств".
		if _, getErr := r.GetByID(ctx, args.CardID); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("[repository/applying balance delta to card %d] %w", args.CardID, domain.ErrNotEnoughBalance)
	}
	return nil, convertErr(err, "applying balance delta to card %d", args.CardID)
}

func (r *CardRepository) DeleteCard(ctx context.Context, id int64) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting card %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting card %d", id)
	}
	return nil
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	err := row.Scan(
		&card.ID, &card.CreatedAt, &card.UpdatedAt, &card.UserID,
		&card.Number, &card.Holder, &card.Expiry, &card.Balance, &card.Design,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &card, nil
}
