package repoargs

import (
	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransaction struct {
	CardID int64
	Name   string
	Amount decimal.Decimal
	Type   domain.TransactionType
}

type RegisterIdempotencyKey struct {
	Key       string
	CardID    int64
	Operation string
}
