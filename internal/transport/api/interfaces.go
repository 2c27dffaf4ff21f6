package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/fsdevblog/eazypay/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	DeleteAccount(ctx context.Context, id int64) error
}

type CardServicer interface {
	AddCard(ctx context.Context, userID int64, args service.AddCardArgs) (*domain.Card, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Card, error)
	DeleteCard(ctx context.Context, userID, cardID int64) error
}

type LedgerServicer interface {
	TopUp(
		ctx context.Context,
		userID, cardID int64,
		amount decimal.Decimal,
		idempotencyKey string,
	) (*domain.Card, *domain.Transaction, error)
	Deduct(
		ctx context.Context,
		userID, cardID int64,
		amount decimal.Decimal,
		idempotencyKey string,
	) (*domain.Card, error)
	Transfer(
		ctx context.Context,
		userID, cardID int64,
		recipient string,
		amount decimal.Decimal,
		idempotencyKey string,
	) (*domain.Card, *domain.Transaction, error)
	SplitPayment(
		ctx context.Context,
		userID int64,
		item string,
		total decimal.Decimal,
		allocations []service.Allocation,
	) ([]domain.Card, error)
	SplitBill(ctx context.Context, userID int64, args service.SplitBillArgs) (*service.SplitBillResult, error)
	RecordTransaction(
		ctx context.Context,
		userID int64,
		args service.RecordTransactionArgs,
	) (*domain.Card, *domain.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID int64) ([]domain.Transaction, error)
}
