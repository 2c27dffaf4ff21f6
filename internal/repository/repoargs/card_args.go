package repoargs

import (
	"github.com/fsdevblog/eazypay/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateCard struct {
	UserID int64
	Number string
	Holder string
	Expiry string
	Design string
}

// ApplyBalanceDelta аргументы условного обновления баланса. При Guard == GuardNonNegative
// репозиторий обязан отклонить операцию, уводящую баланс в минус, единым атомарным шагом.
type ApplyBalanceDelta struct {
	CardID int64
	Delta  decimal.Decimal
	Guard  domain.BalanceGuard
}
