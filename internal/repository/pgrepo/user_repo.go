package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
	"github.com/fsdevblog/eazypay/pkg/uow"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

const userColumns = "id, created_at, updated_at, username, password_hash"

func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING `+userColumns, args.Username, args.Password)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username `%s`", username)
	}
	return user, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// DeleteUser удаляет юзера. Карты удаляются каскадом на уровне схемы,
// транзакции остаются в журнале.
func (u *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := u.conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "deleting user %d", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Username, &user.Password)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
