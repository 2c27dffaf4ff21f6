package service

import (
	"context"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CardRepository interface {
	CreateCard(ctx context.Context, args repoargs.CreateCard) (*domain.Card, error)
	GetByID(ctx context.Context, id int64) (*domain.Card, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error)
	ApplyBalanceDelta(ctx context.Context, args repoargs.ApplyBalanceDelta) (*domain.Card, error)
	DeleteCard(ctx context.Context, id int64) error
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	GetByCardIDs(ctx context.Context, cardIDs []int64) ([]domain.Transaction, error)
}

type IdempotencyRepository interface {
	RegisterKey(ctx context.Context, args repoargs.RegisterIdempotencyKey) error
}

// Notifier рассылает уведомления участникам разделенного счета. Каждый участник
// обрабатывается независимо: результат возвращается по каждому отдельно.
type Notifier interface {
	Dispatch(ctx context.Context, notice SplitBillNotice, participants []Participant) []DeliveryResult
}
